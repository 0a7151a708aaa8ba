package types

// MachineID identifies a virtual machine within one hypervisor connection.
// It is opaque to vmherd: whatever name the control interface reports is
// carried through unchanged. Unique per connection; no internal structure
// is assumed.
type MachineID string
