package components

// String returns the roster name of the species.
func (k Kind) String() string {
	switch k {
	case KindBoisei:
		return "boisei"
	case KindErgaster:
		return "ergaster"
	}
	return "unknown"
}

// Prefix returns the one-letter column prefix used in result files.
func (k Kind) Prefix() string {
	if k == KindErgaster {
		return "E"
	}
	return "B"
}

// String returns a short label for the scavenging state.
func (s ScavengeState) String() string {
	if s == ScavengeWaiting {
		return "waiting"
	}
	return "idle"
}
