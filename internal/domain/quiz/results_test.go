package quiz_test

import (
	"testing"

	"github.com/okian/tradecalc/internal/domain/handoff"
	"github.com/okian/tradecalc/internal/domain/quiz"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecommend(t *testing.T) {
	Convey("Given scores with a clear leader", t, func() {
		msg := &handoff.QuizResults{Scores: map[string]int{"electrician": 10, "hvac": 7, "plumber": 3}}
		rec := quiz.Recommend(msg)

		Convey("Then the leader is recommended and the next two are alternates", func() {
			So(rec.Fallback, ShouldBeFalse)
			So(rec.Recommended.Name, ShouldEqual, "Electrician")
			So(rec.Recommended.Score, ShouldEqual, 10)
			So(rec.Alternates[0].Key, ShouldEqual, "hvac")
			So(rec.Alternates[1].Key, ShouldEqual, "plumber")
			So(rec.SalaryLink(), ShouldEqual, "/api/v1/salary?trade=Electrician")
		})
	})

	Convey("Given tied scores", t, func() {
		msg := &handoff.QuizResults{Scores: map[string]int{"mechanic": 4, "welder": 4, "cdl": 4, "hvac": 1}}
		ranking := quiz.Rank(msg.Scores)

		Convey("Then ties keep the fixed key order", func() {
			So(ranking, ShouldResemble, []quiz.Ranked{
				{Key: "welder", Score: 4},
				{Key: "cdl", Score: 4},
				{Key: "mechanic", Score: 4},
				{Key: "hvac", Score: 1},
			})
		})
	})

	Convey("Given scores with an unknown trade key", t, func() {
		msg := &handoff.QuizResults{Scores: map[string]int{"astronaut": 50, "carpenter": 2}}
		rec := quiz.Recommend(msg)

		Convey("Then the unknown key is ignored", func() {
			So(rec.Recommended.Key, ShouldEqual, "carpenter")
			So(rec.Alternates, ShouldBeEmpty)
		})
	})

	Convey("Given no message", t, func() {
		rec := quiz.Recommend(nil)

		Convey("Then HVAC is the fallback with zero points", func() {
			So(rec.Fallback, ShouldBeTrue)
			So(rec.Recommended.Name, ShouldEqual, "HVAC Technician")
			So(rec.Recommended.Score, ShouldEqual, 0)
			So(rec.Alternates, ShouldBeEmpty)
			So(rec.Ranking, ShouldBeEmpty)
		})
	})

	Convey("Given the mechanic trade", t, func() {
		info, ok := quiz.Info("mechanic")

		Convey("Then it maps to the diesel mechanic salary trade", func() {
			So(ok, ShouldBeTrue)
			So(info.SalaryTrade, ShouldEqual, "Diesel Mechanic")
			So(len(info.Pros), ShouldEqual, 4)
		})
	})
}
