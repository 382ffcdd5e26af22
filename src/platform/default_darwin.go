package platform

const defaultBackend = BackendAppKit
