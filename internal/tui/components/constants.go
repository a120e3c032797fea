package components

const (
	ColumnWidth = 34              // ColumnWidth is the styled width of one column
	CardWidth   = ColumnWidth - 4 // CardWidth leaves room for the column border and padding

	columnBorderLines = 1 // top border
	headerLines       = 2 // column title and the gap below it
	cardInsetX        = 2 // column border + left padding
	controlInsetX     = 2 // card border + left padding

	emptyColumnText = "No cards"
)
