package task

// InheritPolicy controls whether Task.Local walks into a parent task's
// local-value stack once the calling task's own stack is exhausted.
type InheritPolicy uint8

const (
	// InheritNone restricts the lookup to the calling task's own stack.
	InheritNone InheritPolicy = iota
	// InheritFromParent continues the lookup into the parent task's stack
	// (and transitively its parent's) once exhausted, per §5's
	// "child-inherits-from-parent mechanism".
	InheritFromParent
)

// localBinding is one frame of the task-local value stack: a singly
// linked list, pushed/popped strictly LIFO, allocated from the owning
// task's own bump allocator.
type localBinding struct {
	next      *localBinding
	keyType   any
	value     any
	valueType any
}

// PushLocal prepends a new binding frame to the task-local stack. Value
// ownership transfers in: the caller must not mutate value afterwards if
// valueType implies reference semantics matter to readers.
func (t *Task) PushLocal(keyType, value, valueType any) {
	b := t.alloc.allocLocalBinding()
	b.keyType = keyType
	b.value = value
	b.valueType = valueType
	b.next = t.local
	t.local = b
}

// Local walks the stack (optionally into parent-task stacks per
// inheritPolicy) and returns the innermost matching value, or nil and
// false if no binding matches keyType.
func (t *Task) Local(keyType any, inheritPolicy InheritPolicy) (value any, ok bool) {
	for cur := t; cur != nil; {
		for b := cur.local; b != nil; b = b.next {
			if b.keyType == keyType {
				return b.value, true
			}
		}
		if inheritPolicy != InheritFromParent {
			break
		}
		cur = cur.parent
	}
	return nil, false
}

// PopLocal removes the topmost binding frame; its storage is reclaimed
// via the task allocator.
func (t *Task) PopLocal() {
	if t.local == nil {
		return
	}
	top := t.local
	t.local = top.next
	t.alloc.freeLocalBinding(top)
}
