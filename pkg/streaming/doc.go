/*
Package streaming provides the unbounded side of piflow: producers generate
samples forever and a single consumer decides when to stop.

  - channel: BackpressureChannel, a fixed-capacity FIFO whose Close is called
    by the consumer and fails every pending and future Send
  - sampler: A group of producers, each with its own random source, that push
    one boolean per random pair

Typical flow:

	queue, _ := channel.New[bool](1024)
	group, _ := sampler.Start(ctx, sampler.Config{Producers: 7}, queue)

	for i := 0; i < quota; i++ {
		ok, _ := queue.Receive(ctx)
		...
	}

	queue.Close()  // producers see ErrChannelClosed on their next send
	group.Wait()   // every producer has exited

Producers also watch their context, so group.Stop ends them even when the
queue is never closed.
*/
package streaming
