package request

const (
	VersionExchange2007SP1 Version = iota + 1
	VersionExchange2010
	VersionExchange2010SP1
	VersionExchange2010SP2
	VersionExchange2013
	VersionExchange2013SP1
)

// Version identifies a protocol schema version. Versions are ordered:
// a larger value understands everything a smaller one does.
type Version int

var versionNames = map[Version]string{
	VersionExchange2007SP1: "Exchange2007_SP1",
	VersionExchange2010:    "Exchange2010",
	VersionExchange2010SP1: "Exchange2010_SP1",
	VersionExchange2010SP2: "Exchange2010_SP2",
	VersionExchange2013:    "Exchange2013",
	VersionExchange2013SP1: "Exchange2013_SP1",
}

// String returns the wire name of the version
func (v Version) String() string {
	return versionNames[v]
}

// IsValid will validate whether the version is known or not
func (v Version) IsValid() bool {
	_, ok := versionNames[v]
	return ok
}

// AtLeast reports whether this version understands features introduced
// in min.
func (v Version) AtLeast(min Version) bool {
	return v >= min
}

// ParseVersion resolves a wire name back to a Version. The zero Version
// is returned for unknown names.
func ParseVersion(name string) Version {
	for v, n := range versionNames {
		if n == name {
			return v
		}
	}
	return 0
}
