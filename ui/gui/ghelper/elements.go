package ghelper

// ---- UI ELEMENTS ----

// ---- StatusLine ----

// StatusLine shows a short message that fades out after ttl seconds.
type StatusLine struct {
	Text string
	ttl  float64
	left float64
}

func (sl *StatusLine) Show(msg string, ttl float64) {
	sl.Text = msg
	sl.ttl = ttl
	sl.left = ttl
}

// Tick advances the timer by dt seconds.
func (sl *StatusLine) Tick(dt float64) {
	if sl.left <= 0 {
		return
	}
	sl.left -= dt
	if sl.left <= 0 {
		sl.left = 0
		sl.Text = ""
	}
}

func (sl *StatusLine) Visible() bool {
	return sl.left > 0 && sl.Text != ""
}

// Alpha is 1 for most of the lifetime and fades during the last quarter.
func (sl *StatusLine) Alpha() float64 {
	if !sl.Visible() || sl.ttl <= 0 {
		return 0
	}
	fade := sl.ttl / 4
	if sl.left >= fade {
		return 1
	}
	return sl.left / fade
}
