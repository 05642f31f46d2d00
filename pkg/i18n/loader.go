package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/leonelquinteros/gotext"
	"gopkg.in/yaml.v3"
)

// Catalogs maps a locale to its message catalog (message id → pattern).
type Catalogs map[string]map[string]string

// Locales returns the catalog locales.
func (c Catalogs) Locales() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	return out
}

// LoadCatalogs loads message catalogs from an fs.FS.
// The fs.FS root must contain language directories directly.
// File convention: {lang}/{namespace}.{json,yaml,yml,po}
//
// Nested keys are flattened with dots and prefixed with the namespace, so
// key "greeting" in en/app.json becomes message id "app.greeting".
//
// Example structure:
//
//	en/app.json
//	en/errors.yaml
//	de/app.po
func LoadCatalogs(fsys fs.FS) (Catalogs, error) {
	catalogs := make(Catalogs)

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" && ext != ".po" {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}

		lang := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		var messages map[string]string
		if ext == ".po" {
			messages, err = LoadPOCatalog(fsys, filePath)
		} else {
			messages, err = loadTree(fsys, filePath, ext)
		}
		if err != nil {
			return err
		}

		dst, ok := catalogs[lang]
		if !ok {
			dst = make(map[string]string, len(messages))
			catalogs[lang] = dst
		}
		for key, value := range messages {
			dst[namespace+"."+key] = value
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return catalogs, nil
}

func loadTree(fsys fs.FS, filePath, ext string) (map[string]string, error) {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", filePath, err)
	}

	var tree map[string]any
	if ext == ".json" {
		err = json.Unmarshal(data, &tree)
	} else {
		err = yaml.Unmarshal(data, &tree)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
	}

	out := make(map[string]string)
	flatten(tree, "", out)
	return out, nil
}

func flatten(tree map[string]any, prefix string, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(val, key, out)
		case string:
			out[key] = val
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// LoadPOCatalog reads a gettext .po file. Each translated msgid becomes a
// message id; untranslated entries are skipped.
func LoadPOCatalog(fsys fs.FS, filePath string) (map[string]string, error) {
	if _, err := fs.Stat(fsys, filePath); err != nil {
		return nil, fmt.Errorf("reading %q: %w", filePath, err)
	}

	po := gotext.NewPoFS(fsys)
	po.ParseFile(filePath)

	out := make(map[string]string)
	for id, tr := range po.GetDomain().GetTranslations() {
		if id == "" || !tr.IsTranslated() {
			continue
		}
		out[id] = tr.Get()
	}
	return out, nil
}

// LoadLocaleData reads locale datasets (*.yaml, *.yml, *.json) from an
// fs.FS, one dataset per file. A dataset without a locale field takes the
// file name, so "pt-br.yaml" describes "pt-br".
func LoadLocaleData(fsys fs.FS) ([]LocaleData, error) {
	var out []LocaleData

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var ld LocaleData
		if ext == ".json" {
			err = json.Unmarshal(data, &ld)
		} else {
			err = yaml.Unmarshal(data, &ld)
		}
		if err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}
		if ld.Locale == "" {
			ld.Locale = strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		}

		out = append(out, ld)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
