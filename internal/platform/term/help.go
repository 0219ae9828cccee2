package term

// HowToPlay is the rules text shown by the play loop and the rules
// command.
const HowToPlay = `The goal of the game is to find where all mines in a minefield are located
without accidentally triggering a landmine!

There are two actions you can use to achieve this goal.

Dig: Reveals the status of a buried location (represented by '-').
    If a mine (represented by 'M') is revealed, you lose.
    If a number is revealed, that is the amount of mines in the location's
    immediate surroundings (diagonals included).
    If a zero is revealed, the surroundings are automatically dug up for you
    as there are no mines nearby.

Flag: Marks a buried location as a suspected mine.
    A buried location becomes flagged (represented by 'F').
    A flagged location returns to buried.
    Flagged locations cannot be dug up until unflagged.

To make a move, type the first letter of the action followed by the row and
column, e.g. 'D 5 6' digs at row 5, column 6. Type 'Q' to quit.

To win the game, all non-mine locations must be dug up! Mines can be either
flagged or left buried.`
