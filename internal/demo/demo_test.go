package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, wt Walkthrough) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, wt(&buf))
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestDoublyLinkedList(t *testing.T) {
	lines := run(t, DoublyLinkedList)

	want := []string{
		"Current count of nodes in list: 0",
		"Appending to list...",
		"Traversing list forwards...",
		"First node",
		"Second node",
		"BETWEEN SECOND AND THIRD NODES",
		"Third node",
		"Traversing list backwards...",
		"Third node",
		"BETWEEN SECOND AND THIRD NODES",
		"Second node",
		"First node",
		"Clearing list...",
		"Current count of nodes in list: 0",
	}
	assert.Equal(t, want, lines)
}

func TestSinglyLinkedList(t *testing.T) {
	lines := run(t, SinglyLinkedList)

	assert.Contains(t, lines, "List: [Inserted at head Node 1 Inserted at position 2 Node 2 Inserted before tail Node 3]")
	assert.Contains(t, lines, "List: [Node 1 Inserted at position 2 Inserted before tail]")
	assert.Contains(t, lines, "Current count of nodes in list: 3")
	assert.Equal(t, []string{"Empty: false", "Empty: true"}, lines[len(lines)-2:])
}

func TestStack(t *testing.T) {
	lines := run(t, Stack)

	assert.Contains(t, lines, "Rejected pop: stack is empty")
	popped := lines[indexOf(lines, "Popping all items...")+1:][:2]
	assert.Equal(t, []string{"31", "61"}, popped)
	assert.Equal(t, "Current stack count: 0", lines[len(lines)-1])
}

func TestQueue(t *testing.T) {
	lines := run(t, Queue)

	assert.Contains(t, lines, "Current value at head of queue: 1")
	assert.Contains(t, lines, "Current value at tail of queue: 10")
	drained := lines[indexOf(lines, "Dequeuing all items...")+1:][:10]
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, drained)
	assert.Equal(t, "Items in queue: 0", lines[len(lines)-1])
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"dll", "queue", "sll", "stack"}, Names())
	_, ok := Lookup("dll")
	assert.True(t, ok)
	_, ok = Lookup("heap")
	assert.False(t, ok)
}

func indexOf(lines []string, line string) int {
	for i, l := range lines {
		if l == line {
			return i
		}
	}
	return -1
}
