package async

import (
	"context"
)

// Task represents an asynchronous operation with a name and function.
type Task[T any] struct {
	Name string
	Func func(context.Context) (T, error)
}

// Result holds the outcome of one task.
type Result[T any] struct {
	Name  string
	Value T
	Err   error
}

// RunAll executes all tasks concurrently and returns their results in
// task order, regardless of completion order. All tasks are started at
// once and RunAll waits for every one of them; a failing task never
// prevents the others from finishing.
//
// Example:
//
//	tasks := []Task[Outcome]{
//	    {Name: "us-east-1", Func: taskA},
//	    {Name: "eu-west-1", Func: taskB},
//	}
//	results := RunAll(ctx, tasks)
func RunAll[T any](ctx context.Context, tasks []Task[T]) []Result[T] {
	results := make([]Result[T], len(tasks))
	if len(tasks) == 0 {
		return results
	}

	type indexed struct {
		i     int
		value T
		err   error
	}

	resultChan := make(chan indexed, len(tasks))

	// Start all tasks
	for i, task := range tasks {
		i, task := i, task
		go func() {
			value, err := task.Func(ctx)
			resultChan <- indexed{i: i, value: value, err: err}
		}()
	}

	// Collect in completion order, store in task order
	for n := 0; n < len(tasks); n++ {
		res := <-resultChan
		results[res.i] = Result[T]{
			Name:  tasks[res.i].Name,
			Value: res.value,
			Err:   res.err,
		}
	}

	return results
}
