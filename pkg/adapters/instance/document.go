package instance

// Document is the decoded shape of an instance file exported from the model finder.
//
// Atoms keep the model finder's numeric suffixes ("Node3", "Red0", "Prover0"); they are
// normalized once while building the trace. Node atoms are identified by their position
// in Nodes, never by the digits in their names.
type Document struct {
	Name  string   `mapstructure:"name"`
	Nodes []string `mapstructure:"nodes"`

	// Neighbors is either a list of [a, b] atom pairs or a map of atom -> neighbor atoms.
	Neighbors any `mapstructure:"neighbors"`

	States []StateDocument `mapstructure:"states"`
}

// StateDocument is one proof state as exported.
type StateDocument struct {
	Turn  string            `mapstructure:"turn"`
	Color map[string]string `mapstructure:"color"`

	// Covered is either a map of atom -> flag (bool or label such as "True0"),
	// or a list of covered atoms (every other node is uncovered).
	Covered any `mapstructure:"covered"`
}
