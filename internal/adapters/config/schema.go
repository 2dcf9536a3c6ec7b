package config

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "embedstr.yaml"

// File represents the structure of the embedstr.yaml configuration file.
type File struct {
	Version     string   `yaml:"version"`
	Inputs      []string `yaml:"inputs"`
	Ignore      []string `yaml:"ignore"`
	Split       string   `yaml:"split"`
	Concurrency int      `yaml:"concurrency"`
}
