package quiz_test

import (
	"testing"

	"github.com/okian/tradecalc/internal/domain/handoff"
	"github.com/okian/tradecalc/internal/domain/quiz"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuestions(t *testing.T) {
	Convey("Given the question table", t, func() {
		qs := quiz.Questions()

		Convey("Then there are ten questions with three to seven options", func() {
			So(len(qs), ShouldEqual, 10)
			So(quiz.Len(), ShouldEqual, 10)
			for i, q := range qs {
				So(q.ID, ShouldEqual, i)
				So(len(q.Options), ShouldBeBetweenOrEqual, 3, 7)
			}
		})

		Convey("Then every awarded key is a known trade", func() {
			known := map[string]bool{}
			for _, k := range quiz.Keys() {
				known[k] = true
			}
			for _, q := range qs {
				for _, o := range q.Options {
					for k := range o.Points {
						So(known[k], ShouldBeTrue)
					}
				}
			}
		})

		Convey("When a caller edits the returned copy", func() {
			qs[0].Options[0].Points[quiz.HVAC] = 100

			Convey("Then the table is unchanged", func() {
				q, ok := quiz.QuestionAt(0)
				So(ok, ShouldBeTrue)
				So(q.Options[0].Points[quiz.HVAC], ShouldEqual, 2)
			})
		})

		Convey("Then out of range lookups fail", func() {
			_, ok := quiz.QuestionAt(10)
			So(ok, ShouldBeFalse)
			_, ok = quiz.QuestionAt(-1)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestScore(t *testing.T) {
	Convey("Given no answers", t, func() {
		s := quiz.Score(nil)

		Convey("Then every trade key is present with zero", func() {
			So(len(s), ShouldEqual, 7)
			for _, k := range quiz.Keys() {
				v, ok := s[k]
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 0)
			}
		})
	})

	Convey("Given answers with out of range indices", t, func() {
		s := quiz.Score(quiz.Answers{0: 3, 1: 9, 42: 0, -1: 0})

		Convey("Then only valid selections count", func() {
			So(s[quiz.CDL], ShouldEqual, 3)
			So(s[quiz.Mechanic], ShouldEqual, 0)
		})
	})
}

func TestSession(t *testing.T) {
	Convey("Given a new session", t, func() {
		s := quiz.NewSession()

		Convey("Then it starts on the first question at 10 percent", func() {
			So(s.Current(), ShouldEqual, 0)
			So(s.Progress(), ShouldEqual, 10)
			So(s.Submitted(), ShouldBeFalse)
			So(s.Question().Text, ShouldEqual, "Do you prefer working indoors or outdoors?")
		})

		Convey("When advancing without a selection", func() {
			_, err := s.Next()

			Convey("Then it is refused", func() {
				So(err, ShouldEqual, quiz.ErrNoSelection)
				So(s.Current(), ShouldEqual, 0)
			})
		})

		Convey("When going back from the first question", func() {
			Convey("Then it is refused", func() {
				So(s.Previous(), ShouldEqual, quiz.ErrAtFirstQuestion)
			})
		})

		Convey("When selecting an option that does not exist", func() {
			Convey("Then it is refused", func() {
				So(s.Select(4), ShouldEqual, quiz.ErrInvalidOption)
				So(s.Select(-1), ShouldEqual, quiz.ErrInvalidOption)
			})
		})

		Convey("When re-selecting a different option for the same question", func() {
			So(s.Select(0), ShouldBeNil)
			So(s.Scores()[quiz.HVAC], ShouldEqual, 2)
			So(s.Select(3), ShouldBeNil)

			Convey("Then the earlier choice no longer counts", func() {
				sc := s.Scores()
				So(sc[quiz.HVAC], ShouldEqual, 0)
				So(sc[quiz.Electrician], ShouldEqual, 0)
				So(sc[quiz.CDL], ShouldEqual, 3)
				sel, ok := s.Selected()
				So(ok, ShouldBeTrue)
				So(sel, ShouldEqual, 3)
			})

			Convey("And selecting the same option twice is idempotent", func() {
				So(s.Select(3), ShouldBeNil)
				So(s.Scores()[quiz.CDL], ShouldEqual, 3)
			})
		})

		Convey("When moving forward and back", func() {
			So(s.Select(1), ShouldBeNil)
			msg, err := s.Next()
			So(err, ShouldBeNil)
			So(msg, ShouldBeNil)
			So(s.Current(), ShouldEqual, 1)
			So(s.Previous(), ShouldBeNil)

			Convey("Then the earlier selection is kept", func() {
				sel, ok := s.Selected()
				So(ok, ShouldBeTrue)
				So(sel, ShouldEqual, 1)
			})
		})

		Convey("When answering the first option of every question", func() {
			var msg *handoff.QuizResults
			for i := 0; i < quiz.Len(); i++ {
				So(s.Select(0), ShouldBeNil)
				m, err := s.Next()
				So(err, ShouldBeNil)
				msg = m
			}

			Convey("Then the last step submits and hands over the scores", func() {
				So(s.Submitted(), ShouldBeTrue)
				So(s.Progress(), ShouldEqual, 100)
				So(msg, ShouldNotBeNil)
				So(msg.Scores, ShouldResemble, map[string]int{
					quiz.HVAC: 10, quiz.Electrician: 14, quiz.Plumber: 5, quiz.Welder: 3,
					quiz.Carpenter: 7, quiz.CDL: 2, quiz.Mechanic: 2,
				})
			})

			Convey("Then further transitions fail", func() {
				So(s.Select(1), ShouldEqual, quiz.ErrSubmitted)
				_, err := s.Next()
				So(err, ShouldEqual, quiz.ErrSubmitted)
				So(s.Previous(), ShouldEqual, quiz.ErrSubmitted)
			})

			Convey("Then the recommendation follows the scores", func() {
				rec := quiz.Recommend(msg)
				So(rec.Recommended.Key, ShouldEqual, quiz.Electrician)
				So(rec.Recommended.Score, ShouldEqual, 14)
				So(len(rec.Alternates), ShouldEqual, 2)
				So(rec.Alternates[0].Key, ShouldEqual, quiz.HVAC)
				So(rec.Alternates[1].Key, ShouldEqual, quiz.Carpenter)
			})
		})
	})
}

func TestSnapshot(t *testing.T) {
	Convey("Given a session on its second question", t, func() {
		s := quiz.NewSession()
		So(s.Select(2), ShouldBeNil)
		_, err := s.Next()
		So(err, ShouldBeNil)

		Convey("When nothing is selected yet", func() {
			snap := s.Snapshot()

			Convey("Then the snapshot shows no selection", func() {
				So(snap.Current, ShouldEqual, 1)
				So(snap.Total, ShouldEqual, 10)
				So(snap.Selected, ShouldBeNil)
				So(snap.Answered, ShouldEqual, 1)
				So(snap.Progress, ShouldEqual, 20)
				So(snap.Question.ID, ShouldEqual, 1)
			})
		})

		Convey("When an option is selected", func() {
			So(s.Select(1), ShouldBeNil)
			snap := s.Snapshot()

			Convey("Then the snapshot carries it", func() {
				So(snap.Selected, ShouldNotBeNil)
				So(*snap.Selected, ShouldEqual, 1)
				So(snap.Answered, ShouldEqual, 2)
			})
		})
	})
}
