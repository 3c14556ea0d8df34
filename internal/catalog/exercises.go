package catalog

import "example.com/wellness/internal/domain"

var defaultExercises = []domain.Exercise{
	{
		Name:         "Walking",
		Description:  "Simple exercise for all fitness levels.",
		Instructions: "Warm up for 5 mins, walk briskly for 20-30 mins. Cool down.",
		Benefits:     "Improves cardiovascular health, boosts mood, aids in weight loss.",
	},
	{
		Name:         "Yoga",
		Description:  "Improve flexibility and reduce stress with yoga.",
		Instructions: "Basic poses: Mountain Pose, Downward Dog, Child's Pose. Hold 20-30 secs.",
		Benefits:     "Enhances flexibility, reduces stress, improves mental well-being.",
	},
	{
		Name:         "Water Aerobics",
		Description:  "Low-impact exercise in water for cardio fitness.",
		Instructions: "Do leg lifts, arm circles, and jog in place in waist-deep water for 30-45 mins.",
		Benefits:     "Full-body workout with minimal joint impact, improves strength.",
	},
	{
		Name:         "Tai Chi",
		Description:  "Gentle martial arts form that improves balance and reduces stress.",
		Instructions: "Guided Tai Chi routine with slow movements and deep breathing for 20-30 mins.",
		Benefits:     "Improves balance, reduces stress, enhances mental clarity.",
	},
	{
		Name:         "Chair Yoga",
		Description:  "Seated yoga to improve flexibility and strength.",
		Instructions: "Seated poses: Seated Forward Bend, Seated Twist. Hold 20-30 secs.",
		Benefits:     "Increases flexibility and strength, beneficial for limited mobility.",
	},
	{
		Name:         "Resistance Band Exercises",
		Description:  "Use resistance bands for strength without heavy weights.",
		Instructions: "Bicep curls, squats with resistance bands. 2-3 sets of 10-15 reps.",
		Benefits:     "Builds muscle strength and endurance without heavy weights.",
	},
	{
		Name:         "Balance Exercises",
		Description:  "Improve balance and reduce fall risk.",
		Instructions: "Stand on one foot, heel-to-toe walk. Hold each position for 20-30 secs.",
		Benefits:     "Enhances balance and coordination, reduces fall risk.",
	},
	{
		Name:         "Pilates",
		Description:  "Low-impact exercise focusing on core strength, flexibility, posture.",
		Instructions: "Guided Pilates routine with controlled movements and breathing for 30-45 mins.",
		Benefits:     "Improves core strength, flexibility, and posture.",
	},
	{
		Name:         "Cycling",
		Description:  "Stationary or outdoor biking for cardio health and leg strength.",
		Instructions: "Cycle at a moderate pace for 30-45 mins, include warm-up and cool-down periods.",
		Benefits:     "Boosts cardiovascular health, strengthens leg muscles.",
	},
	{
		Name:         "Strength Training with Dumbbells",
		Description:  "Use light weights to improve muscle strength and tone.",
		Instructions: "Dumbbell curls, shoulder presses. 2-3 sets of 10-15 reps.",
		Benefits:     "Increases muscle strength and tone, enhances overall fitness.",
	},
	{
		Name:         "Stretching",
		Description:  "Simple stretches for flexibility and reduced muscle stiffness.",
		Instructions: "Hold each stretch for 20-30 secs, focus on major muscle groups.",
		Benefits:     "Improves flexibility, reduces muscle stiffness, aids in recovery.",
	},
	{
		Name:         "Dancing",
		Description:  "Fun activity for cardio fitness and coordination.",
		Instructions: "Dance to favorite music for 30-45 mins, include varied movements and styles.",
		Benefits:     "Enhances cardiovascular fitness, coordination, and mood.",
	},
}
