package i18n

import "fmt"

// MessageDescriptor identifies a translatable message. ID keys into the
// catalogs; DefaultMessage is the template used when no catalog has the id.
// Description is authoring metadata and never affects formatting.
type MessageDescriptor struct {
	Description    any    `json:"description,omitempty" yaml:"description,omitempty"`
	ID             string `json:"id" yaml:"id"`
	DefaultMessage string `json:"defaultMessage,omitempty" yaml:"defaultMessage,omitempty"`
}

// DefineMessages checks that every descriptor carries an id and returns the
// descriptors unchanged, so message sets can be declared as package vars:
//
//	var msgs = i18n.DefineMessages(map[string]i18n.MessageDescriptor{
//	    "greeting": {ID: "app.greeting", DefaultMessage: "Hello, {name}!"},
//	})
func DefineMessages(descriptors map[string]MessageDescriptor) map[string]MessageDescriptor {
	for key, d := range descriptors {
		if d.ID == "" {
			panic(fmt.Sprintf("i18n: message descriptor %q has no id", key))
		}
	}
	return descriptors
}
