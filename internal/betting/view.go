package betting

// View is a read-only snapshot of the ledger from the acting seat's
// perspective, handed to agents and drivers. Slices are copies; mutating a
// View never touches the ledger.
type View struct {
	Street            Street
	Pot               int
	TotalPot          int
	PlayerCount       int
	ButtonSeat        int
	ActorSeat         int
	Stacks            []int
	Committed         []int
	Folded            []bool
	AllIn             []bool
	ToCall            int
	MinRaiseIncrement int
	LegalActions      []Action
}

// View snapshots the ledger for the current actor.
func (l *Ledger) View() View {
	actor := l.ActorSeat()
	return View{
		Street:            l.Street(),
		Pot:               l.Pot(),
		TotalPot:          l.TotalPot(),
		PlayerCount:       l.PlayerCount(),
		ButtonSeat:        l.ButtonSeat(),
		ActorSeat:         actor,
		Stacks:            l.Stacks(),
		Committed:         l.Committed(),
		Folded:            l.Folded(),
		AllIn:             l.AllIn(),
		ToCall:            l.ToCall(actor),
		MinRaiseIncrement: max(l.LastRaiseIncrement(), l.Config().minRaise()),
		LegalActions:      l.LegalActions(actor),
	}
}
