package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"
)

//go:embed *.json
var localeFS embed.FS

const DefaultLang = "en"

// Supported lists the locales the site ships copy for, default first
var Supported = []string{"en", "es"}

var (
	// catalogs maps "en" -> "contact.submit" -> "Submit"
	catalogs = make(map[string]map[string]string)
	mutex    sync.RWMutex

	matcher = language.NewMatcher([]language.Tag{language.English, language.Spanish})

	// htmlPolicy limits locale markup to inline formatting and links
	htmlPolicy = newHTMLPolicy()
)

func newHTMLPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("strong", "em", "br", "span")
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	p.RequireNoReferrerOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Load reads every embedded <lang>.json file into the catalogs
func Load() error {
	entries, err := localeFS.ReadDir(".")
	if err != nil {
		return fmt.Errorf("failed to read embedded locales: %w", err)
	}

	loaded := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".json")

		content, err := localeFS.ReadFile(entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}

		var tree map[string]interface{}
		if err := json.Unmarshal(content, &tree); err != nil {
			return fmt.Errorf("failed to unmarshal locale %s: %w", entry.Name(), err)
		}

		flat := make(map[string]string)
		flatten("", tree, flat)
		loaded[lang] = flat
		log.Printf("[INFO] Loaded locale: %s (%d keys)", lang, len(flat))
	}

	mutex.Lock()
	catalogs = loaded
	mutex.Unlock()
	return nil
}

// flatten turns nested objects into dot-separated keys
func flatten(prefix string, tree map[string]interface{}, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch child := v.(type) {
		case map[string]interface{}:
			flatten(key, child, out)
		case string:
			out[key] = child
		default:
			out[key] = fmt.Sprint(child)
		}
	}
}

// T translates key into the locale carried by ctx
func T(ctx context.Context, key string, args ...map[string]interface{}) string {
	return Translate(GetLocale(ctx), key, args...)
}

// HTML translates key and returns it as sanitized markup. Locale strings may
// carry inline emphasis; anything outside the policy is stripped.
func HTML(ctx context.Context, key string, args ...map[string]interface{}) template.HTML {
	return template.HTML(htmlPolicy.Sanitize(T(ctx, key, args...)))
}

// Translate looks key up in lang, then in the default locale, then returns key
func Translate(lang, key string, args ...map[string]interface{}) string {
	mutex.RLock()
	defer mutex.RUnlock()

	if val, ok := catalogs[lang][key]; ok {
		return format(val, args...)
	}
	if lang != DefaultLang {
		if val, ok := catalogs[DefaultLang][key]; ok {
			return format(val, args...)
		}
	}
	return key
}

// format replaces {name} placeholders with values from the first args map
func format(text string, args ...map[string]interface{}) string {
	if len(args) == 0 || len(args[0]) == 0 {
		return text
	}
	pairs := make([]string, 0, len(args[0])*2)
	for k, v := range args[0] {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

type contextKey string

const LocaleContextKey contextKey = "locale"

// WithLocale returns a context carrying lang
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, LocaleContextKey, lang)
}

// GetLocale extracts the locale set by the locale middleware, defaulting to "en"
func GetLocale(ctx context.Context) string {
	if lang, ok := ctx.Value(LocaleContextKey).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}

// IsSupported reports whether lang has a shipped catalog
func IsSupported(lang string) bool {
	for _, s := range Supported {
		if s == lang {
			return true
		}
	}
	return false
}

// MatchAcceptLanguage picks the best supported locale for an Accept-Language header
func MatchAcceptLanguage(header string) string {
	if header == "" {
		return DefaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLang
	}
	return Supported[idx]
}
