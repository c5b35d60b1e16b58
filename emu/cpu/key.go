package cpu

// HeldKey is the single hex key the host currently reports as pressed.
// There is no queue: a newer press replaces an older one, and key
// instructions consume the key by releasing it.
type HeldKey struct {
	key  uint8
	held bool
}

// Press marks key (0x0-0xF) as held.
func (k *HeldKey) Press(key uint8) {
	k.key = key & 0xF
	k.held = true
}

// Release clears the held key.
func (k *HeldKey) Release() {
	k.held = false
	k.key = 0
}

// Get returns the held key and whether any key is held.
func (k *HeldKey) Get() (uint8, bool) {
	return k.key, k.held
}
