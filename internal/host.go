package internal

// Instance is a host node (element or text) owned by a fiber's StateNode.
type Instance any

// Container is the host node a root renders into.
type Container any

// HostConfig is the set of host tree operations the reconciler needs. The
// render phase only calls CreateInstance, CreateTextInstance and
// AppendInitialChild on instances it just created; everything else runs
// during commit.
type HostConfig interface {
	// CreateInstance allocates an unattached host element.
	CreateInstance(typ string, props Props) Instance
	// CreateTextInstance allocates an unattached text node.
	CreateTextInstance(content string) Instance
	// AppendInitialChild attaches child to an offscreen parent.
	AppendInitialChild(parent, child Instance)

	AppendChild(parent, child Instance)
	AppendChildToContainer(container Container, child Instance)
	RemoveChild(parent, child Instance)
	RemoveChildFromContainer(container Container, child Instance)

	// CommitUpdate applies the prop changes computed for an existing
	// instance.
	CommitUpdate(instance Instance, typ string, changes []PropChange)
}
