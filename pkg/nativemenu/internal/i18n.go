package internal

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message IDs of the built-in strings.
const (
	MessageNoItems     = "NoItems"
	MessageCounter     = "Counter"
	MessageEmptyOption = "EmptyOption"
)

var defaultMessages = map[string]*i18n.Message{
	MessageNoItems:     {ID: MessageNoItems, Other: "There are no items in this list."},
	MessageCounter:     {ID: MessageCounter, Other: "{{.Index}} / {{.Count}}"},
	MessageEmptyOption: {ID: MessageEmptyOption, Other: "-"},
}

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		files, err := localeFS.ReadDir("locales")
		if err != nil {
			GetLogger().Error("Failed to read embedded locales", "error", err)
			return
		}
		for _, f := range files {
			if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+f.Name()); err != nil {
				GetLogger().Error("Failed to load locale", "file", f.Name(), "error", err)
			}
		}
	})
	return bundle
}

// Translator renders the built-in strings for one language.
type Translator struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewTranslator builds a translator for a BCP 47 tag such as "de" or
// "en-US". Unknown or malformed tags fall back to English.
func NewTranslator(lang string) *Translator {
	tag := language.English
	if lang != "" {
		if parsed, err := language.Parse(lang); err == nil {
			tag = parsed
		} else {
			GetLogger().Warn("Unknown language tag, using English", "language", lang, "error", err)
		}
	}
	return &Translator{
		tag:       tag,
		localizer: i18n.NewLocalizer(getBundle(), tag.String(), language.English.String()),
	}
}

// Language returns the requested tag.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// Text localises a message, falling back to the English default.
func (t *Translator) Text(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: defaultMessages[id],
		TemplateData:   data,
	})
	if err != nil && msg == "" {
		GetLogger().Debug("Missing translation", "id", id, "language", t.tag.String(), "error", err)
		if d, ok := defaultMessages[id]; ok {
			return d.Other
		}
		return id
	}
	return msg
}

// NoItems is the row text of an empty menu.
func (t *Translator) NoItems() string {
	return t.Text(MessageNoItems, nil)
}

// Counter renders "index / count".
func (t *Translator) Counter(index, count int) string {
	return t.Text(MessageCounter, map[string]any{"Index": index, "Count": count})
}

// EmptyOption is the value shown for a list without options.
func (t *Translator) EmptyOption() string {
	return t.Text(MessageEmptyOption, nil)
}
