package event

// PermissionRequiredData is the payload of a PermissionRequired event,
// published when a tool invocation needs user confirmation.
type PermissionRequiredData struct {
	Tool     string `json:"tool"`
	Resource string `json:"resource,omitempty"`
}

// PermissionResolvedData is the payload of a PermissionResolved event.
type PermissionResolvedData struct {
	Tool    string `json:"tool"`
	Granted bool   `json:"granted"`
}

// ConfigUpdatedData is the payload of a ConfigUpdated event. Path names the
// config document that changed on disk; empty when the update came from an
// in-process save.
type ConfigUpdatedData struct {
	Path string `json:"path,omitempty"`
}
