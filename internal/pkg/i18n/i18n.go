package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const DefaultLocale = "en"

const fileName = "notifications.yaml"

//go:embed locales/*/notifications.yaml
var embedded embed.FS

type Translations map[string]string

var (
	locales = make(map[string]Translations)
	mu      sync.RWMutex
)

func init() {
	if err := load(embedded, "locales"); err != nil {
		panic(fmt.Sprintf("i18n: embedded locales: %v", err))
	}
}

// LoadTranslations merges locale files found under localePath on top of the
// embedded defaults. Each locale is a directory holding notifications.yaml.
func LoadTranslations(localePath string) error {
	return load(os.DirFS(localePath), ".")
}

func load(fsys fs.FS, root string) error {
	mu.Lock()
	defer mu.Unlock()

	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		locale := entry.Name()
		filePath := locale + "/" + fileName
		if root != "." {
			filePath = root + "/" + filePath
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			continue
		}

		var file struct {
			Notifications Translations `yaml:"NOTIFICATIONS"`
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filePath, err)
		}

		if locales[locale] == nil {
			locales[locale] = make(Translations)
		}
		for k, v := range file.Notifications {
			locales[locale][k] = v
		}
	}

	return nil
}

// Translate looks key up in locale, then in the default locale. The key
// itself is returned when neither has it.
func Translate(locale, key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if trans, ok := locales[locale]; ok {
		if val, ok := trans[key]; ok {
			return val
		}
	}

	if locale != DefaultLocale {
		if trans, ok := locales[DefaultLocale]; ok {
			if val, ok := trans[key]; ok {
				return val
			}
		}
	}

	return key
}

// Format translates key and substitutes {placeholder} values.
func Format(locale, key string, args map[string]string) string {
	msg := Translate(locale, key)
	if len(args) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(args)*2)
	for k, v := range args {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
