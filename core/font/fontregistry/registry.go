package fontregistry

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/fbterm/core/font/outline"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/gomono"
)

// FallbackName is the name the compiled-in fallback font is registered as.
const FallbackName = "go_mono"

// Registry is a type for holding loaded fonts for a set of terminals.
type Registry struct {
	sync.Mutex
	fonts     map[string][]byte
	instances map[string]*outline.Font
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold loaded fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates a registry which knows the fallback font only.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string][]byte),
		instances: make(map[string]*outline.Font),
	}
	fr.fonts[FallbackName] = gomono.TTF
	return fr
}

// StoreFont registers font data under a name if the name is not taken yet.
// The data is validated by parsing it; invalid data is not stored.
func (fr *Registry) StoreFont(name string, data []byte) error {
	if len(data) == 0 {
		return core.Error(core.EINVALID, "registry cannot store empty font %q", name)
	}
	if _, err := outline.New(data, 12, outline.Name(name), outline.CacheSize(1)); err != nil {
		return err
	}
	normalized := NormalizeFontname(name)
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalized]; !ok {
		tracer().Debugf("registry stores font %s as %s", name, normalized)
		fr.fonts[normalized] = data
	}
	return nil
}

// Contains is true if a font has been stored under name.
func (fr *Registry) Contains(name string) bool {
	fr.Lock()
	defer fr.Unlock()
	_, ok := fr.fonts[NormalizeFontname(name)]
	return ok
}

// Font returns a font instance for a registered font at a given size in
// points, rendered for a display of resolution dpi. Instances are created
// once per name, size and resolution.
//
// If no font is registered under name, the fallback font at the requested
// size is returned together with an EMISSING error.
func (fr *Registry) Font(name string, size, dpi float64) (*outline.Font, error) {
	normalized := NormalizeFontname(name)
	fr.Lock()
	defer fr.Unlock()
	var err error
	if _, ok := fr.fonts[normalized]; !ok {
		tracer().Infof("registry does not contain font %s", normalized)
		err = core.Error(core.EMISSING, "font %s not found in registry", normalized)
		normalized = FallbackName
	}
	iname := appendSize(normalized, size, dpi)
	if f, ok := fr.instances[iname]; ok {
		tracer().Debugf("registry found font %s", iname)
		return f, err
	}
	f, ferr := outline.New(fr.fonts[normalized], size, outline.Name(normalized), outline.DPI(dpi))
	if ferr != nil {
		return nil, ferr
	}
	tracer().Infof("font registry caches font %s", iname)
	fr.instances[iname] = f
	return f, err
}

// LogFontList is a helper function to dump the list of known fonts and
// instances to the trace (log-level Info).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for _, k := range sortedKeys(fr.fonts) {
		tracer().Infof("font [%s] = %d bytes", k, len(fr.fonts[k]))
	}
	for _, k := range sortedKeys(fr.instances) {
		tracer().Infof("instance [%s] = %v", k, fr.instances[k].Stats())
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeFontname derives a registry key from a font name or a font
// file name.
func NormalizeFontname(fname string) string {
	fname = path.Base(strings.TrimSpace(fname))
	if ext := path.Ext(fname); ext != "" {
		switch strings.ToLower(ext) {
		case ".ttf", ".otf", ".ttc":
			fname = fname[:len(fname)-len(ext)]
		}
	}
	fname = strings.ReplaceAll(fname, " ", "_")
	fname = strings.ReplaceAll(fname, "-", "_")
	return strings.ToLower(fname)
}

func appendSize(fname string, size, dpi float64) string {
	return fmt.Sprintf("%s-%.2f@%.0f", fname, size, dpi)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
