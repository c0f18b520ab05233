package objectc

import "fmt"

// Validate checks the cross-object rules:
// READ/WRITE and SERIALIZE/DESERIALIZE must pair up, NETWORKED
// requires both SERIALIZE and DESERIALIZE, VERSIONS requires
// SERIALIZE (and vice versa), and HASH hex strings must be unique
// across the sorted set. sorted must already be the output of
// Resolve.
func Validate(sorted []*ObjectFile) error {
	seenHash := make(map[string]string, len(sorted))

	for _, o := range sorted {
		if o.HasWrite != o.HasRead {
			return fmt.Errorf("objectc: %s: WRITE and READ must both be declared or both omitted", o.Name)
		}
		if o.HasSerialize != o.HasDeserialize {
			return fmt.Errorf("objectc: %s: SERIALIZE and DESERIALIZE must both be declared or both omitted", o.Name)
		}
		if o.Networked && !(o.HasSerialize && o.HasDeserialize) {
			return fmt.Errorf("objectc: %s: NETWORKED requires SERIALIZE and DESERIALIZE", o.Name)
		}
		hasVersions := len(o.Versions) > 0
		if hasVersions != o.HasSerialize {
			return fmt.Errorf("objectc: %s: VERSIONS requires SERIALIZE (and vice versa)", o.Name)
		}

		if err := validateConstructors(o); err != nil {
			return err
		}

		if o.Hash == 0 {
			continue
		}
		if prev, dup := seenHash[o.HashHex]; dup {
			return fmt.Errorf("objectc: HASH collision %s between %q and %q", o.HashHex, prev, o.Name)
		}
		seenHash[o.HashHex] = o.Name
	}
	return nil
}

// validateConstructors enforces "exactly one default (empty-args)
// constructor is permitted".
func validateConstructors(o *ObjectFile) error {
	defaults := 0
	for _, c := range o.Constructors {
		if c.Params == "" {
			defaults++
		}
	}
	if defaults > 1 {
		return fmt.Errorf("objectc: %s: only one default CONSTRUCTOR() is permitted, found %d", o.Name, defaults)
	}
	return nil
}
