package types

// ModuleID identifies a module globally by its publishing address and name.
type ModuleID struct {
	Address AccountAddress
	Name    Identifier
}

// NewModuleID builds a ModuleID from an address and a name.
func NewModuleID(addr AccountAddress, name Identifier) ModuleID {
	return ModuleID{Address: addr, Name: name}
}

// String renders the id as "0xADDR::Name" using the short address form.
func (id ModuleID) String() string {
	return id.Address.ShortString() + "::" + string(id.Name)
}
