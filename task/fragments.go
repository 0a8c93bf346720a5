package task

// ChildFragment is present on a Task iff flags.IsChildTask() is set. It
// links the task into its parent's child list.
//
// next_child may be mutated only by the parent task (§3.1 "Child
// visibility"); SetNextChild enforces this by requiring the caller to
// present the claimed parent, panicking with ErrChildMutatedByNonParent
// otherwise.
type ChildFragment struct {
	// parent is a non-owning back-reference to the owning parent task.
	parent *Task

	// nextChild is a non-owning link, singly threaded from the parent's
	// ChildTaskStatusRecord. Mutated only by the parent.
	nextChild *Task
}

// Parent returns the non-owning back-reference to the owning parent task.
func (c *ChildFragment) Parent() *Task { return c.parent }

// NextChild returns the next sibling in the parent's child list.
func (c *ChildFragment) NextChild() *Task { return c.nextChild }

// SetNextChild mutates the next-child link. by must be the same Task as
// c.Parent(); any other caller is a programmer error per §3.1.
func (c *ChildFragment) SetNextChild(by *Task, next *Task) {
	if by != c.parent {
		panic(WrapError("SetNextChild", ErrChildMutatedByNonParent))
	}
	c.nextChild = next
}

// GroupChildFragment is present on a Task iff flags.IsGroupChild() is set.
// It links the task to the TaskGroup that spawned it.
type GroupChildFragment struct {
	// group is a non-owning reference to the owning TaskGroup.
	group *Group
}

// Group returns the non-owning reference to the owning TaskGroup.
func (g *GroupChildFragment) Group() *Group { return g.group }
