package services

import "github.com/gtnlabs/gtn/internal/catalog/domain/item"

// Sorter reorders filtered views of the collection in place. Only the
// handle slices move; the records and the owning store are untouched.
type Sorter struct{}

// NewSorter creates a new Sorter.
func NewSorter() *Sorter {
	return &Sorter{}
}

// SortByPriority merge sorts tasks ascending by priority. The <=
// comparator keeps left-run elements first on ties, so equal priorities
// retain their original relative order.
func (s *Sorter) SortByPriority(tasks []*item.Task) {
	mergeSort(tasks, func(a, b *item.Task) bool {
		return a.Priority() <= b.Priority()
	})
}

// SortByDeadline merge sorts tasks by lexicographic deadline string.
// This is string order, not calendar order: "No Deadline" sorts where
// the alphabet puts it, not last.
func (s *Sorter) SortByDeadline(tasks []*item.Task) {
	mergeSort(tasks, func(a, b *item.Task) bool {
		return a.Deadline() <= b.Deadline()
	})
}

// mergeSort is the shared divide-and-conquer skeleton. lte must report
// whether a sorts at-or-before b.
func mergeSort(tasks []*item.Task, lte func(a, b *item.Task) bool) {
	if len(tasks) <= 1 {
		return
	}
	mid := len(tasks) / 2
	left := append([]*item.Task(nil), tasks[:mid]...)
	right := append([]*item.Task(nil), tasks[mid:]...)
	mergeSort(left, lte)
	mergeSort(right, lte)

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if lte(left[i], right[j]) {
			tasks[k] = left[i]
			i++
		} else {
			tasks[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		tasks[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		tasks[k] = right[j]
		j++
		k++
	}
}

// SortByProgress heap sorts goals into descending progress order via a
// max-heap keyed on Progress(). A child scoring the sentinel is never
// promoted over its parent, so non-quantifiable goals sink to the end.
func (s *Sorter) SortByProgress(goals []*item.Goal) {
	n := len(goals)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(goals, n, i)
	}
	for i := n - 1; i >= 0; i-- {
		goals[0], goals[i] = goals[i], goals[0]
		siftDown(goals, i, 0)
	}
	// Extraction leaves the slice ascending; the contract is largest
	// progress first with non-quantifiable goals last.
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		goals[i], goals[j] = goals[j], goals[i]
	}
}

func siftDown(goals []*item.Goal, n, i int) {
	largest := i
	left := 2*i + 1
	right := 2*i + 2

	if left < n && goals[left].Progress() > goals[largest].Progress() &&
		goals[left].Progress() != item.ProgressSentinel {
		largest = left
	}
	if right < n && goals[right].Progress() > goals[largest].Progress() &&
		goals[right].Progress() != item.ProgressSentinel {
		largest = right
	}
	if largest != i {
		goals[i], goals[largest] = goals[largest], goals[i]
		siftDown(goals, n, largest)
	}
}
