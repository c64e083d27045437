package game

// State is the turn state of a shedding game
type State int

const (
	PlayerTurn State = iota
	CPUPending       // the CPU acts once its deadline has passed
	CPUTurn
	Terminal
)

var stateNames = []string{"PlayerTurn", "CPUPending", "CPUTurn", "Terminal"}

func (s State) String() string {
	return stateNames[s]
}

// Seat identifies one of the two participants
type Seat int

const (
	Player Seat = iota
	CPU
)

// Seats lists both participants, human first.
var Seats = []Seat{Player, CPU}

func (s Seat) String() string {
	if s == CPU {
		return "CPU"
	}
	return "Player"
}

// Other returns the opposing seat.
func (s Seat) Other() Seat {
	if s == CPU {
		return Player
	}
	return CPU
}
