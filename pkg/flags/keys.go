package flags

// Keys embed the date, one flag per day. Stale per-day keys accumulate;
// nothing enumerates or garbage-collects them.

// BlindBoxKey is the per-day blind box opened flag.
func BlindBoxKey(today string) string { return "blindbox_opened_" + today }

// DailyDoneKey is the per-day chooser completion flag.
func DailyDoneKey(today string) string { return "daily_done_" + today }

// DailyReplyKey holds the reply text shown after the chooser completes, so a
// reload lands back on the result instead of the done-without-reply notice.
func DailyReplyKey(today string) string { return "daily_reply_" + today }
