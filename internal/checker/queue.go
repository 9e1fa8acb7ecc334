package checker

import "context"

// task is one deferred check. A task completes by returning; the queue
// runs the next task only after the previous one has returned, so no
// two checks ever overlap.
type task func(ctx context.Context)

// taskQueue is the ordered list of pending checks. Page tasks prepend
// the link tasks they discover, so every link found on page i is
// checked before the task for page i+1 runs.
type taskQueue struct {
	tasks []task
}

// pushFront inserts tasks at the front of the queue, preserving their
// given order.
func (q *taskQueue) pushFront(tasks ...task) {
	q.tasks = append(tasks, q.tasks...)
}

// pushBack appends a task at the back of the queue.
func (q *taskQueue) pushBack(t task) {
	q.tasks = append(q.tasks, t)
}

// pop removes and returns the front task.
func (q *taskQueue) pop() (task, bool) {
	if len(q.tasks) == 0 {
		return nil, false
	}
	t := q.tasks[0]
	q.tasks = q.tasks[1:]
	return t, true
}

// run drains the queue front-to-back until it is empty, including any
// tasks added while draining.
func (q *taskQueue) run(ctx context.Context) {
	for {
		t, ok := q.pop()
		if !ok {
			return
		}
		t(ctx)
	}
}
