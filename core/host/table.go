package host

// FunctionTable is the entity-API capability record handed to the engine.
// Slots left at their zero value are not implemented by the plugin.
type FunctionTable struct {
	GameInit          Hook[func() Result]
	Spawn             Hook[func(entity int) Result]
	ClientConnect     Hook[func(client int, name, address string) Result]
	ClientDisconnect  Hook[func(client int) Result]
	ClientPutInServer Hook[func(client int) Result]
	ClientCommand     Hook[func(client int, args []string) Result]
	ServerActivate    Hook[func(edicts EntityList) Result]
	ServerDeactivate  Hook[func() Result]
	StartFrame        Hook[func() Result]
}

// Implemented returns the names of the populated slots in table order.
func (t FunctionTable) Implemented() []string {
	slots := []struct {
		name string
		set  bool
	}{
		{"GameInit", t.GameInit.Implemented()},
		{"Spawn", t.Spawn.Implemented()},
		{"ClientConnect", t.ClientConnect.Implemented()},
		{"ClientDisconnect", t.ClientDisconnect.Implemented()},
		{"ClientPutInServer", t.ClientPutInServer.Implemented()},
		{"ClientCommand", t.ClientCommand.Implemented()},
		{"ServerActivate", t.ServerActivate.Implemented()},
		{"ServerDeactivate", t.ServerDeactivate.Implemented()},
		{"StartFrame", t.StartFrame.Implemented()},
	}

	var names []string
	for _, s := range slots {
		if s.set {
			names = append(names, s.name)
		}
	}
	return names
}
