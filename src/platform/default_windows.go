package platform

const defaultBackend = BackendWin32
