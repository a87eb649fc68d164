package domain

import "hash/fnv"

var dreamInsights = []string{
	"Recurring environments in dreams usually reflect emotional context, not literal places.",
	"Lucid awareness increases when dream journaling is done consistently, not perfectly.",
	"Most people forget eighty percent of their dreams within minutes unless they record them.",
	"REM sleep intensifies as morning approaches. That is why late dreams feel more vivid.",
	"Dreams often exaggerate small anxieties to make you pay attention to them.",
	"A dream character you argue with is usually a part of yourself you ignore when awake.",
	"Your brain tests new beliefs in dreams long before you act on them in real life.",
	"Dreams replay emotions more than memories. The storyline is just packaging.",
	"Creative breakthroughs often appear in dreams because inhibition is reduced during REM.",
	"Disturbing dreams rarely predict anything. They highlight unresolved tension.",
	"Keeping a dream journal actually increases dream vividness over time through recall training.",
	"Dreams involving water usually correlate with shifts in emotional processing.",
	"The weirder a dream feels, the more likely it reflects something you have avoided thinking about.",
	"The subconscious remembers everything, even what the conscious mind discards.",
	"Dreams involving revisiting your childhood home often signal reflection on identity.",
	"Lucid dreaming is less about control and more about awareness.",
	"Being chased in dreams usually reflects avoidance. The chaser is often something you have refused to deal with.",
	"Dreams of flying often appear when your mind is testing the limits of personal freedom.",
	"Struggling to take off in a flying dream often mirrors real world frustration or self doubt.",
	"Dreams of falling usually appear during periods of instability or transitions you feel unprepared for.",
	"Chase dreams that end with confrontation often mark emotional growth. The mind stops running when you are ready to face the issue.",
}

// DailyInsight is the tip shown for a given day.
type DailyInsight struct {
	DayKey  string `json:"day_key"`
	Insight string `json:"insight"`
}

// InsightForDay picks the tip for a day key. The same key always gives the same tip.
func InsightForDay(dayKey string) DailyInsight {
	h := fnv.New32a()
	_, _ = h.Write([]byte(dayKey))
	return DailyInsight{
		DayKey:  dayKey,
		Insight: dreamInsights[h.Sum32()%uint32(len(dreamInsights))],
	}
}
