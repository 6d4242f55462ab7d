package outbound

// TaskDispatcher abstracts the worker pool so services can run fire-and-forget
// work without holding a pool reference. *ants.Pool satisfies it directly.
type TaskDispatcher interface {
	Submit(task func()) error
}
