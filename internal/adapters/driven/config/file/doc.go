// Package file provides the TOML-backed ConfigStore.
// Settings live in ~/.clonegroup/config.toml unless another directory
// is given.
package file
