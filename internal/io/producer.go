package io

import "sync"

type Producer interface {
	Produce(work chan *WorkUnit, wg *sync.WaitGroup, inputPaths []string)
}

type Consumer interface {
	Consume(work chan *WorkUnit, errchan chan error, wg *sync.WaitGroup)
}
