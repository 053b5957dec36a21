package domain

// DemoDays is the built-in dataset the processor falls back to when the
// artifact cannot be fetched. It mirrors the artifact contract: days newest
// first, images time-ascending within a day.
func DemoDays() []DayRecord {
	return []DayRecord{
		{
			Date:     "2025-06-21",
			Location: "Golden Gardens",
			Images: []ImageRecord{
				{Src: "demo/solstice-0512.jpg", Time: "05:12", Tag: TagSunrise, Caption: "Solstice first light"},
				{Src: "demo/solstice-2104.jpg", Time: "21:04", Tag: TagSunset, Caption: "Longest evening", Hero: true},
			},
		},
		{
			Date:     "2025-06-14",
			Location: "Alki Beach",
			Images: []ImageRecord{
				{Src: "demo/alki-0547.jpg", Time: "05:47", Tag: TagSunrise},
				{Src: "demo/alki-1203.mp4", Time: "12:03", Type: MediaVideo, Tag: TagSunset, Caption: "Midday ferry crossing"},
				{Src: "demo/alki-2011.jpg", Time: "20:11", Tag: TagSunset},
			},
		},
		{
			Date:     "2025-06-08",
			Location: "Discovery Park",
			Images: []ImageRecord{
				{Src: "demo/discovery-2058.jpg", Time: "20:58", Tag: TagSunset, Caption: "Lighthouse afterglow"},
			},
		},
	}
}
