package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	repository "github.com/okian/tradecalc/internal/adapters/repository"
	service "github.com/okian/tradecalc/internal/app"
	"github.com/okian/tradecalc/internal/domain/costofliving"
	"github.com/okian/tradecalc/internal/domain/handoff"
	"github.com/okian/tradecalc/internal/domain/quiz"
	"github.com/okian/tradecalc/internal/domain/salary"
	"github.com/okian/tradecalc/internal/domain/travel"
	"github.com/okian/tradecalc/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func started(opts ...service.Option) *service.Service {
	svc := service.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	return svc
}

// finish answers option 0 on every question and returns the results token.
func finish(ctx context.Context, svc *service.Service, id string) string {
	var token string
	for i := 0; i < quiz.Len(); i++ {
		_, err := svc.AnswerQuiz(ctx, id, 0)
		So(err, ShouldBeNil)
		_, token, err = svc.NextQuestion(ctx, id)
		So(err, ShouldBeNil)
	}
	return token
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New(
			service.WithSessionCapacity(5),
			service.WithSessionTTL(time.Minute),
			service.WithHandoffCapacity(3),
			service.WithHandoffTTL(time.Minute),
		)
		ctx := context.Background()

		Convey("When quiz operations run before Start", func() {
			_, _, err := svc.StartQuiz(ctx)

			Convey("Then they fail with ErrNotStarted", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
				So(svc.GetStats()["started"], ShouldEqual, false)
			})

			Convey("And reading results falls back", func() {
				rec, found := svc.QuizResults(ctx, "anything")
				So(found, ShouldBeFalse)
				So(rec.Fallback, ShouldBeTrue)
			})
		})

		Convey("When started", func() {
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()

			Convey("Then stats report the configuration and live counts", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["sessionCapacity"], ShouldEqual, 5)
				So(stats["handoffTTL"], ShouldEqual, "1m0s")
				So(stats["activeSessions"], ShouldEqual, 0)
				So(stats["pendingResults"], ShouldEqual, 0)
			})
		})

		Convey("When stopped after starting", func() {
			So(svc.Start(ctx), ShouldBeNil)
			svc.Stop()

			Convey("Then it is marked as stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
				_, err := svc.QuizSession(ctx, "x")
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})
	})
}

func TestService_Calculators(t *testing.T) {
	Convey("Given a service", t, func() {
		svc := service.New()
		ctx := context.Background()

		Convey("When estimating a salary", func() {
			in := salary.DefaultInput()
			in.Trade = "Electrician"
			in.State = "Texas"
			res, ok := svc.EstimateSalary(ctx, in)

			Convey("Then the domain estimate is returned", func() {
				want, _ := salary.Estimate(in)
				So(ok, ShouldBeTrue)
				So(res.Annual, ShouldEqual, want.Annual)
			})
		})

		Convey("When a calculator is missing inputs", func() {
			_, okSalary := svc.EstimateSalary(ctx, salary.DefaultInput())
			_, okCOL := svc.CompareCostOfLiving(ctx, costofliving.DefaultInput())
			_, okTravel := svc.CompareTravel(ctx, travel.DefaultInput())

			Convey("Then nothing is computed", func() {
				So(okSalary, ShouldBeFalse)
				So(okCOL, ShouldBeFalse)
				So(okTravel, ShouldBeFalse)
			})
		})

		Convey("When the salary annual is handed to cost of living", func() {
			in := salary.DefaultInput()
			in.Trade = "HVAC Technician"
			in.State = "New York"
			est, _ := svc.EstimateSalary(ctx, in)

			prefill := handoff.ParseCostOfLiving(mustQuery(handoff.CostOfLivingLink(est.Annual, in.State)))
			col := costofliving.DefaultInput()
			col.AnnualIncome = prefill.Income
			col.CurrentState = prefill.State
			res, ok := svc.CompareCostOfLiving(ctx, col)

			Convey("Then the comparison runs on the rounded annual", func() {
				So(prefill.AutoRun(), ShouldBeTrue)
				So(ok, ShouldBeTrue)
				So(res.NetMonthlyIncome, ShouldAlmostEqual, costofliving.NetMonthly(math.Round(est.Annual), 20), 1e-9)
			})
		})
	})
}

func TestService_Quiz(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := started(service.WithSessionCapacity(2))
		defer svc.Stop()
		ctx := context.Background()

		Convey("When a session is started", func() {
			id, snap, err := svc.StartQuiz(ctx)
			So(err, ShouldBeNil)

			Convey("Then it is at the first question with nothing selected", func() {
				So(id, ShouldNotBeBlank)
				So(snap.Current, ShouldEqual, 0)
				So(snap.Total, ShouldEqual, quiz.Len())
				So(snap.Selected, ShouldBeNil)
				So(snap.Progress, ShouldEqual, 10)
			})

			Convey("And advancing without a selection is refused", func() {
				_, _, err := svc.NextQuestion(ctx, id)
				So(errors.Is(err, quiz.ErrNoSelection), ShouldBeTrue)
			})

			Convey("And going back from the first question is refused", func() {
				_, err := svc.PreviousQuestion(ctx, id)
				So(errors.Is(err, quiz.ErrAtFirstQuestion), ShouldBeTrue)
			})

			Convey("And an out of range option is refused", func() {
				_, err := svc.AnswerQuiz(ctx, id, 99)
				So(errors.Is(err, quiz.ErrInvalidOption), ShouldBeTrue)
			})

			Convey("And answering then stepping keeps the selection", func() {
				snap, err := svc.AnswerQuiz(ctx, id, 2)
				So(err, ShouldBeNil)
				So(*snap.Selected, ShouldEqual, 2)

				snap, token, err := svc.NextQuestion(ctx, id)
				So(err, ShouldBeNil)
				So(token, ShouldBeBlank)
				So(snap.Current, ShouldEqual, 1)

				snap, err = svc.PreviousQuestion(ctx, id)
				So(err, ShouldBeNil)
				So(*snap.Selected, ShouldEqual, 2)
			})

			Convey("And finishing issues a single-use results token", func() {
				token := finish(ctx, svc, id)
				So(token, ShouldNotBeBlank)
				So(svc.GetStats()["pendingResults"], ShouldEqual, 1)

				rec, found := svc.QuizResults(ctx, token)
				So(found, ShouldBeTrue)
				So(rec.Recommended.Key, ShouldEqual, quiz.Electrician)

				again, found := svc.QuizResults(ctx, token)
				So(found, ShouldBeFalse)
				So(again.Fallback, ShouldBeTrue)
				So(again.Recommended.Key, ShouldEqual, quiz.HVAC)

				_, err := svc.AnswerQuiz(ctx, id, 0)
				So(errors.Is(err, quiz.ErrSubmitted), ShouldBeTrue)
			})
		})

		Convey("When more sessions start than fit", func() {
			first, _, _ := svc.StartQuiz(ctx)
			_, _, _ = svc.StartQuiz(ctx)
			_, _, _ = svc.StartQuiz(ctx)

			Convey("Then the oldest is evicted", func() {
				_, err := svc.QuizSession(ctx, first)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				So(svc.GetStats()["activeSessions"], ShouldEqual, 2)
			})
		})

		Convey("When scoring answers without a session", func() {
			rec := svc.ScoreQuiz(ctx, quiz.Answers{0: 0, 1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0, 7: 0, 8: 0, 9: 0})

			Convey("Then the recommendation matches a walked session", func() {
				So(rec.Recommended.Key, ShouldEqual, quiz.Electrician)
				So(rec.Alternates, ShouldHaveLength, 2)
			})
		})
	})
}

func TestService_Expiry(t *testing.T) {
	Convey("Given a service with short lifetimes", t, func() {
		svc := started(
			service.WithSessionTTL(100*time.Millisecond),
			service.WithHandoffTTL(100*time.Millisecond),
		)
		defer svc.Stop()
		ctx := context.Background()

		id, _, err := svc.StartQuiz(ctx)
		So(err, ShouldBeNil)

		Convey("When the session sits idle past its TTL", func() {
			time.Sleep(200 * time.Millisecond)

			Convey("Then it is gone", func() {
				_, err := svc.QuizSession(ctx, id)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When results are left unread past their TTL", func() {
			token := finish(ctx, svc, id)
			time.Sleep(200 * time.Millisecond)

			Convey("Then the token no longer resolves", func() {
				_, found := svc.QuizResults(ctx, token)
				So(found, ShouldBeFalse)
			})
		})
	})
}

func TestService_EndQuiz(t *testing.T) {
	Convey("Given a started service with one session", t, func() {
		svc := started()
		defer svc.Stop()
		ctx := context.Background()
		id, _, err := svc.StartQuiz(ctx)
		So(err, ShouldBeNil)

		Convey("When the session is ended", func() {
			ok, err := svc.EndQuiz(ctx, id)

			Convey("Then it is removed once", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				again, _ := svc.EndQuiz(ctx, id)
				So(again, ShouldBeFalse)
				_, err := svc.QuizSession(ctx, id)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When the service is stopped", func() {
			svc.Stop()

			Convey("Then ending reports not started", func() {
				_, err := svc.EndQuiz(ctx, id)
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})
	})
}
