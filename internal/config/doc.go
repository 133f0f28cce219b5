// Package config manages user-level settings stored at
// ~/.create-react-app/config.yaml. Every key can also be set through an
// environment variable with the CREATE_REACT_APP_ prefix, for example
// CREATE_REACT_APP_REGISTRY_HOST.
package config
