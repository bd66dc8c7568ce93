package service

import (
	"context"
	"sync"

	"github.com/alexanderramin/phaseline/internal/sheet"
)

const testCSV = "Project,Design Owner,Design Start,Design End,Estimating Owner,Estimating Start,Estimating End,Production Owner,Production Start,Production End\n" +
	"Alpha,A,2024-01-10,2024-01-20,n/a,,,,,\n" +
	"Beta,,,,,,,B,2024-03-01,2024-06-15\n"

type stubSource struct {
	data  []byte
	err   error
	calls int
}

var _ sheet.Source = (*stubSource)(nil)

func (s *stubSource) Fetch(context.Context) ([]byte, error) {
	s.calls++
	return s.data, s.err
}

func (s *stubSource) Describe() string { return "stub.csv" }

type recordingUseCaseObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingUseCaseObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}
