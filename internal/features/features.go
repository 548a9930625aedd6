package features

// Stage describes how settled a feature flag is.
type Stage string

const (
	StageStable       Stage = "stable"
	StageBeta         Stage = "beta"
	StageExperimental Stage = "experimental"
	StageDeprecated   Stage = "deprecated"
)

// Spec describes a feature flag exposed by the CLI.
type Spec struct {
	Key            string
	Stage          Stage
	DefaultEnabled bool
	Description    string
}

const (
	// DumpBeforeRender prints the JSON structure dump to stderr before the transcript.
	DumpBeforeRender = "dump_before_render"
	// DidYouMean suggests a similarly named file when the input path is missing.
	DidYouMean = "did_you_mean"
)

// Specs lists every feature flag in display order.
var Specs = []Spec{
	{Key: DidYouMean, Stage: StageStable, DefaultEnabled: true, Description: "suggest similar *.json files for a missing input"},
	{Key: DumpBeforeRender, Stage: StageExperimental, DefaultEnabled: false, Description: "print the document structure to stderr before rendering"},
}

var known = func() map[string]Spec {
	m := make(map[string]Spec, len(Specs))
	for _, spec := range Specs {
		m[spec.Key] = spec
	}
	return m
}()

// IsKnown reports whether the feature key is recognized.
func IsKnown(key string) bool {
	_, ok := known[key]
	return ok
}

// StageFor returns the lifecycle stage for a feature, defaulting to experimental.
func StageFor(key string) Stage {
	if spec, ok := known[key]; ok {
		return spec.Stage
	}
	return StageExperimental
}

// DefaultEnabled reports the default value for the given feature key.
func DefaultEnabled(key string) bool {
	if spec, ok := known[key]; ok {
		return spec.DefaultEnabled
	}
	return false
}

// Enabled resolves a feature against explicit settings, falling back to its default.
func Enabled(settings map[string]bool, key string) bool {
	if v, ok := settings[key]; ok {
		return v
	}
	return DefaultEnabled(key)
}
