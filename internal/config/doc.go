// Package config manages user-level settings stored at ~/.webinit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default framework offered by the prompt flow or the path of a custom
// asset catalog.
package config
