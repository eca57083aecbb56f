package game

// RankForScore maps a final score to a rank title. Thresholds sit one level
// reward apart every five cleared levels (50/100/150/200).
func RankForScore(score int) string {
	switch {
	case score < 50:
		return "Mumbling Rookie"
	case score < 100:
		return "Steady Chirper"
	case score < 150:
		return "Honeyed Lips"
	case score < 200:
		return "Silver Tongue"
	default:
		return "Mouth Champion"
	}
}
