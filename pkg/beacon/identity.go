package beacon

import "github.com/google/uuid"

// NamespaceLinkIdentity is the UUID v5 namespace for link identities,
// derived from the URL namespace and "beacon/link-identity/v1".
var NamespaceLinkIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("beacon/link-identity/v1"))

// ID returns a deterministic UUID v5 for the link's (source, target,
// relation) triple. Links with the same triple share an ID regardless of
// their annotation.
func (l Link) ID() uuid.UUID {
	key := l.Source + "\x1f" + l.Target + "\x1f" + l.Relation
	return uuid.NewSHA1(NamespaceLinkIdentity, []byte(key))
}
