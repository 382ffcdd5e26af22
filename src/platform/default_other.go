//go:build !windows && !darwin

package platform

const defaultBackend = BackendX11
