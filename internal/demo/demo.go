// Package demo holds scripted walkthroughs of the containers, printing each
// step so the behaviour of the lists, the stack and the queue can be
// checked by eye.
package demo

import (
	"fmt"
	"io"
	"sort"

	"github.com/SystemBuilders/chains/internal/list"
	"github.com/SystemBuilders/chains/internal/queue"
	"github.com/SystemBuilders/chains/internal/stack"
)

// Walkthrough prints a scripted sequence of container operations to w.
type Walkthrough func(w io.Writer) error

var walkthroughs = map[string]Walkthrough{
	"dll":   DoublyLinkedList,
	"sll":   SinglyLinkedList,
	"stack": Stack,
	"queue": Queue,
}

// Lookup returns the walkthrough registered under name.
func Lookup(name string) (Walkthrough, bool) {
	wt, ok := walkthroughs[name]
	return wt, ok
}

// Names returns the registered walkthrough names in sorted order.
func Names() []string {
	names := make([]string, 0, len(walkthroughs))
	for name := range walkthroughs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DoublyLinkedList appends three nodes, inserts a fourth between the last
// two, walks the list in both directions and clears it.
func DoublyLinkedList(w io.Writer) error {
	ll := list.NewDoublyLinkedList[string]()

	fmt.Fprintln(w, "Current count of nodes in list:", ll.Count())
	fmt.Fprintln(w, "Appending to list...")
	for _, data := range []string{"First node", "Second node", "Third node"} {
		if _, err := ll.Append(data); err != nil {
			return err
		}
	}
	if _, err := ll.Insert("BETWEEN SECOND AND THIRD NODES", 2); err != nil {
		return err
	}

	fmt.Fprintln(w, "Traversing list forwards...")
	for i := 0; i < ll.Count(); i++ {
		data, err := ll.Get(i)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, data)
	}

	fmt.Fprintln(w, "Traversing list backwards...")
	for i := ll.Count() - 1; i >= 0; i-- {
		data, err := ll.Get(i)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, data)
	}

	fmt.Fprintln(w, "Clearing list...")
	ll.Clear()
	fmt.Fprintln(w, "Current count of nodes in list:", ll.Count())
	return nil
}

// SinglyLinkedList exercises inserts and deletes at the head, in the
// middle and at the tail, including a rejected out of bounds delete.
func SinglyLinkedList(w io.Writer) error {
	ll := list.NewSinglyLinkedList[string]()

	for _, data := range []string{"Node 1", "Node 2", "Node 3"} {
		if _, err := ll.Append(data); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "Current count of nodes in list:", ll.Count())

	if _, err := ll.Insert("Inserted before tail", ll.Count()-1); err != nil {
		return err
	}
	if _, err := ll.Insert("Inserted at head", 0); err != nil {
		return err
	}
	if _, err := ll.Insert("Inserted at position 2", 2); err != nil {
		return err
	}
	fmt.Fprintln(w, "List:", ll.Values())

	if err := ll.Delete(0); err != nil {
		return err
	}
	if err := ll.Delete(2); err != nil {
		return err
	}
	if err := ll.Delete(ll.Count()); err != nil {
		fmt.Fprintln(w, "Rejected delete:", err)
		if err := ll.Delete(ll.Count() - 1); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "List:", ll.Values())
	fmt.Fprintln(w, "Current count of nodes in list:", ll.Count())

	fmt.Fprintln(w, "Empty:", ll.IsEmpty())
	ll.Clear()
	fmt.Fprintln(w, "Empty:", ll.IsEmpty())
	return nil
}

// Stack pushes and pops through a drain, a clear and a refill.
func Stack(w io.Writer) error {
	s := stack.New[int]()

	fmt.Fprintln(w, "Current stack count:", s.Count())
	for _, v := range []int{61, 31} {
		fmt.Fprintf(w, "Pushing %d...\n", v)
		if err := s.Push(v); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "Current stack count:", s.Count())

	fmt.Fprintln(w, "Popping all items...")
	for !s.IsEmpty() {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
	}
	fmt.Fprintln(w, "Current stack count:", s.Count())

	if _, err := s.Pop(); err != nil {
		fmt.Fprintln(w, "Rejected pop:", err)
	}

	for _, v := range []int{15, 99} {
		fmt.Fprintf(w, "Pushing %d...\n", v)
		if err := s.Push(v); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "Current stack count:", s.Count())
	fmt.Fprintln(w, "Clearing stack...")
	s.Clear()
	fmt.Fprintln(w, "Current stack count:", s.Count())
	return nil
}

// Queue enqueues 1 to 10, peeks at both ends and drains the queue.
func Queue(w io.Writer) error {
	q := queue.New[int]()

	fmt.Fprintln(w, "Adding numbers 1 to 10 to the queue...")
	for i := 1; i <= 10; i++ {
		if _, err := q.Enqueue(i); err != nil {
			return err
		}
	}

	head, err := q.PeekHead()
	if err != nil {
		return err
	}
	tail, err := q.PeekTail()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Current value at head of queue:", head)
	fmt.Fprintln(w, "Current value at tail of queue:", tail)

	fmt.Fprintln(w, "Dequeuing all items...")
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
	}
	fmt.Fprintln(w, "Items in queue:", q.Count())
	return nil
}
