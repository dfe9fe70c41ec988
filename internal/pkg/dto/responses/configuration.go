package responses

type ConfigurationEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ConfigurationCategory struct {
	Name    string               `json:"name"`
	Entries []ConfigurationEntry `json:"entries"`
}

type Configuration struct {
	Categories []ConfigurationCategory `json:"categories"`
}
