package voices

// Preset is a named house style: default voice assignments for the standard
// two-host-plus-caller cast.
type Preset struct {
	Name        string
	Assignments map[Role]Assignment
	Fallback    Assignment
}

// Standard role labels produced by script generators.
const (
	RoleHostA  Role = "host 1"
	RoleHostB  Role = "host 2"
	RoleCaller Role = "caller"
)

const DefaultPresetName = "npr"

var presets = map[string]Preset{
	"npr": {
		Name: "npr",
		Assignments: map[Role]Assignment{
			RoleHostA:  {VoiceID: "onyx", Speed: 1.0},
			RoleHostB:  {VoiceID: "nova", Speed: 1.0},
			RoleCaller: {VoiceID: "echo", Speed: 1.0, PostFilter: FilterTelephone},
		},
		Fallback: Assignment{VoiceID: "onyx", Speed: 1.0},
	},
	"morning-radio": {
		Name: "morning-radio",
		Assignments: map[Role]Assignment{
			RoleHostA:  {VoiceID: "alloy", Speed: 1.1},
			RoleHostB:  {VoiceID: "shimmer", Speed: 1.1},
			RoleCaller: {VoiceID: "echo", Speed: 1.05, PostFilter: FilterTelephone},
		},
		Fallback: Assignment{VoiceID: "alloy", Speed: 1.1},
	},
	"british-documentary": {
		Name: "british-documentary",
		Assignments: map[Role]Assignment{
			RoleHostA:  {VoiceID: "fable", Speed: 0.95},
			RoleHostB:  {VoiceID: "nova", Speed: 0.95},
			RoleCaller: {VoiceID: "echo", Speed: 1.0, PostFilter: FilterTelephone},
		},
		Fallback: Assignment{VoiceID: "fable", Speed: 0.95},
	},
}

// PresetByName returns the preset for a style name, falling back to the
// default preset for unknown or empty names.
func PresetByName(name string) Preset {
	if preset, ok := presets[name]; ok {
		return preset
	}
	return presets[DefaultPresetName]
}

// PresetNames returns the known style names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
