package game

import "github.com/prometheus/client_golang/prometheus"

var (
	ticks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "game",
		Name:      "ticks_total",
		Help:      "Ticks applied while playing.",
	})
	foodEaten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "game",
		Name:      "food_eaten_total",
		Help:      "Pieces of food eaten.",
	})
	gamesOver = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "games_over_total",
			Help:      "Rounds ended, by collision cause.",
		},
		[]string{"cause"},
	)
	currentScore = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "snake",
		Subsystem: "game",
		Name:      "score",
		Help:      "Score of the current round.",
	})
	bestScore = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "snake",
		Subsystem: "game",
		Name:      "best_score",
		Help:      "Best score across rounds.",
	})
)

func init() {
	prometheus.MustRegister(ticks, foodEaten, gamesOver, currentScore, bestScore)
}
