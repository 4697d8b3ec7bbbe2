package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/storage"
	"github.com/SeamusWaldron/cubeview/internal/tui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded sessions",
	Long: `List the sessions stored in the history database, newest first.
Sessions are recorded when the viewer runs with --record or with
history.enabled set in the config file.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the moves of a session",
	Long: `Print the moves of a recorded session and the cube they produce from
solved. A unique prefix of the session id is enough.

With --replay the moves are animated in the net view instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var (
	historyLimit  int
	historyReplay bool
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of sessions to list")
	historyShowCmd.Flags().BoolVar(&historyReplay, "replay", false, "Animate the moves in the net view")
}

func openHistory() (*storage.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	path, err := historyPath(cfg)
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	printSessions(cmd.OutOrStdout(), sessions)
	return nil
}

func printSessions(w io.Writer, sessions []storage.Session) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded. Run the viewer with --record to start one.")
		return
	}

	fmt.Fprintln(w, titleStyle.Render("Sessions"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-8s  %-19s  %-8s  %5s  %s\n", "ID", "Started", "Via", "Moves", "Duration")
	for _, s := range sessions {
		duration := "-"
		if s.EndedAt != nil {
			duration = s.Duration().Round(time.Second).String()
		}
		fmt.Fprintf(w, "%-8s  %-19s  %-8s  %5d  %s\n",
			s.SessionID[:8],
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			s.FrontEnd,
			s.MoveCount,
			duration)
	}
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := storage.NewSessionRepository(db).Find(args[0])
	if err != nil {
		return err
	}
	records, err := storage.NewMoveRepository(db).GetBySession(s.SessionID)
	if err != nil {
		return err
	}
	moves, err := storage.ToMoves(records)
	if err != nil {
		return err
	}

	if historyReplay {
		return replaySession(s, moves)
	}
	printSession(cmd.OutOrStdout(), s, records, moves)
	return nil
}

func printSession(w io.Writer, s *storage.Session, records []storage.MoveRecord, moves []cube.Move) {
	fmt.Fprintln(w, titleStyle.Render("Session "+s.SessionID))
	fmt.Fprintf(w, "Started: %s  Via: %s  Frames: %d\n",
		s.StartedAt.Local().Format(time.RFC3339), s.FrontEnd, s.Frames)
	fmt.Fprintln(w)

	if len(records) == 0 {
		fmt.Fprintln(w, statusStyle.Render("No moves."))
		return
	}

	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "%4d  %8.1fs  %-3s %-8s %2d\n", r.Seq, float64(r.TsMs)/1000, r.Notation, r.Source, r.Mismatched)
	}
	fmt.Fprint(w, b.String())
	fmt.Fprintln(w)

	c := cube.New()
	c.ApplyMoves(moves)
	fmt.Fprintln(w, moveStyle.Render(cube.FormatSequence(moves)))
	fmt.Fprintln(w)
	fmt.Fprint(w, c.String())
	fmt.Fprintf(w, "\nMismatched stickers: %s\n", countStyle.Render(fmt.Sprint(c.Mismatched())))
}

func replaySession(s *storage.Session, moves []cube.Move) error {
	e, err := newEnv("replay", false, false)
	if err != nil {
		return err
	}
	defer e.close()

	m := tui.New(e.newApp(), e.keys, e.palette, e.cfg.Animation.FPS)
	m.Replay("replay "+s.SessionID[:8], moves)
	return tui.Run(m)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	return deleteSession(cmd.OutOrStdout(), db, args[0])
}

func deleteSession(w io.Writer, db *storage.DB, prefix string) error {
	sessions := storage.NewSessionRepository(db)
	s, err := sessions.Find(prefix)
	if err != nil {
		return err
	}
	n, err := storage.NewMoveRepository(db).Count(s.SessionID)
	if err != nil {
		return err
	}
	if err := sessions.Delete(s.SessionID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted session %s (%d moves)\n", s.SessionID, n)
	return nil
}
