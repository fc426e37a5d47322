package object

// Blueprint is a template objects are instantiated from. Fields that do not
// apply to a type are ignored.
type Blueprint struct {
	Tag          string                 `yaml:"tag"`
	Name         string                 `yaml:"name"`
	Model        string                 `yaml:"model"`
	Walkmesh     string                 `yaml:"walkmesh"`
	WalkmeshOpen string                 `yaml:"walkmesh_open"`
	Selectable   *bool                  `yaml:"selectable"`
	DrawDistance float32                `yaml:"draw_distance"`
	Scripts      map[ScriptEvent]string `yaml:"scripts"`

	// Creature
	Faction      int     `yaml:"faction"`
	WalkSpeed    float32 `yaml:"walk_speed"`
	RunSpeed     float32 `yaml:"run_speed"`
	SightRange   float32 `yaml:"sight_range"`
	HearingRange float32 `yaml:"hearing_range"`

	// Door and trigger
	LinkedToModule string `yaml:"linked_to_module"`
	LinkedTo       string `yaml:"linked_to"`
	Locked         bool   `yaml:"locked"`

	// Placeable
	Usable bool `yaml:"usable"`

	// Sound
	Sounds      []string `yaml:"sounds"`
	Active      bool     `yaml:"active"`
	Looping     bool     `yaml:"looping"`
	Continuous  bool     `yaml:"continuous"`
	Positional  bool     `yaml:"positional"`
	Priority    int      `yaml:"priority"`
	MaxDistance float32  `yaml:"max_distance"`
	IntervalMs  int      `yaml:"interval_ms"`
	Elevation   float32  `yaml:"elevation"`

	// Camera
	FieldOfView float32 `yaml:"field_of_view"`

	// Store
	MarkUp   int      `yaml:"mark_up"`
	MarkDown int      `yaml:"mark_down"`
	Items    []string `yaml:"items"`

	// Encounter
	Templates []string `yaml:"templates"`

	// Area of effect
	Radius   float32 `yaml:"radius"`
	Duration float32 `yaml:"duration"`
}

// BlueprintSource resolves blueprints by type and name.
type BlueprintSource interface {
	Blueprint(typ Type, name string) (*Blueprint, bool)
}
