package markup

import "errors"

var (
	ErrNilFormatter      = errors.New("markup: nil formatter")
	ErrInvalidElement    = errors.New("markup: element must be a tag name or a RenderFunc")
	ErrUnknownKind       = errors.New("markup: unknown element kind")
	ErrNilElementBuilder = errors.New("markup: nil element builder")
	ErrUnknownMethod     = errors.New("markup: unknown method")
	ErrInvalidAlias      = errors.New("markup: invalid alias")
	ErrDuplicateAlias    = errors.New("markup: duplicate alias")
)
