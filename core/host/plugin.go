package host

// InterfaceVersion is the entity-API version this plugin is built against.
const InterfaceVersion = 140

// Plugin owns the prepared function table handed out during negotiation.
type Plugin struct {
	table FunctionTable
}

// NewPlugin creates a plugin exposing the given table.
func NewPlugin(table FunctionTable) *Plugin {
	return &Plugin{table: table}
}

// GetEntityAPI2 copies the plugin's function table into out.
//
// It fails without writing anything when out or interfaceVersion is nil.
// When the requested version differs from InterfaceVersion, the plugin's version
// is written back into interfaceVersion so the caller can tell who is out of date.
func (p *Plugin) GetEntityAPI2(out *FunctionTable, interfaceVersion *int) bool {
	if out == nil || interfaceVersion == nil {
		return false
	}
	if *interfaceVersion != InterfaceVersion {
		*interfaceVersion = InterfaceVersion
		return false
	}
	*out = p.table
	return true
}
