package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"schedsim/config"
	"schedsim/internal/requests"
	"schedsim/internal/schedulers"
)

// SchedulerHandler exposes one endpoint per scheduling policy plus the
// comparison endpoint. Every request gets its own scheduler, so concurrent
// requests never share simulation state.
type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	PriorityScheduling(ctx *fiber.Ctx) error
	EarliestDeadlineFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	log    *logrus.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, log *logrus.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, log: log}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	_, scheduler, err := s.parseRequest(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response, err := scheduler.FirstComeFirstServe()
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	_, scheduler, err := s.parseRequest(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response, err := scheduler.ShortestJobFirst()
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) PriorityScheduling(ctx *fiber.Ctx) error {
	_, scheduler, err := s.parseRequest(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response, err := scheduler.PriorityScheduling()
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) EarliestDeadlineFirst(ctx *fiber.Ctx) error {
	_, scheduler, err := s.parseRequest(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response, err := scheduler.EarliestDeadlineFirst()
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, scheduler, err := s.parseRequest(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response, err := scheduler.RoundRobin(s.timeQuantum(request))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	request, scheduler, err := s.parseRequest(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response, err := scheduler.MultilevelFeedbackQueue(s.levelQuanta(request))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, scheduler, err := s.parseRequest(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response, err := scheduler.CompareAll(s.timeQuantum(request), s.levelQuanta(request))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(response)
}

var errInvalidBody = errors.New("invalid request format")

// parseRequest decodes the body and loads its jobs into a fresh scheduler
// sized from the request, falling back to the configured core count.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequest, *schedulers.Scheduler, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return request, nil, errInvalidBody
	}

	cores := request.Cores
	if cores == 0 {
		cores = s.config.Cores
	}
	scheduler, err := schedulers.NewScheduler(cores, s.log)
	if err != nil {
		return request, nil, err
	}
	if err := scheduler.AddProcesses(request.Jobs); err != nil {
		return request, nil, err
	}
	return request, scheduler, nil
}

func (s *SchedulerHandlerImpl) timeQuantum(request requests.ScheduleRequest) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) levelQuanta(request requests.ScheduleRequest) []int {
	if len(request.LevelTimeQuanta) != 0 {
		return request.LevelTimeQuanta
	}
	return s.config.MultilevelFeedbackQueueLevelsTimeQuantum
}

// writeError maps the scheduler's recoverable errors to 400 responses;
// anything unexpected stays a 500.
func (s *SchedulerHandlerImpl) writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, schedulers.ErrInvalidCoreCount),
		errors.Is(err, schedulers.ErrEmptyProcessSet),
		errors.Is(err, schedulers.ErrNonPositiveQuantum),
		errors.Is(err, schedulers.ErrNonPositiveBurst):
		status = fiber.StatusBadRequest
	}
	s.log.WithError(err).Warn("rejected schedule request")
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
