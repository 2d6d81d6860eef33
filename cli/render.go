package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/saltmail/ews/ewsxml"
	"github.com/saltmail/ews/operation"
	"github.com/saltmail/ews/property"
	"github.com/saltmail/ews/request"
	"github.com/saltmail/ews/search"
	"github.com/saltmail/ews/validate"
)

type renderParams struct {
	Kind      string `yaml:"kind" validate:"oneof=item folder calendar conversation"`
	PageSize  int32  `yaml:"page_size" validate:"gte=1"`
	Offset    int32  `yaml:"offset" validate:"gte=0"`
	BasePoint string `yaml:"base_point" validate:"oneof=Beginning End"`
	Traversal string `yaml:"traversal" validate:"oneof=Shallow Deep SoftDeleted Associated"`
	BaseShape string `yaml:"base_shape" validate:"oneof=IdOnly Default AllProperties"`
	Aggregate string `yaml:"aggregate" validate:"oneof=Minimum Maximum"`
	SortOrder string `yaml:"sort_order" validate:"oneof=Ascending Descending"`
}

func renderCommand(cfg *Config) *cobra.Command {
	params := renderParams{}
	var properties, folders []string
	var sortBy, groupBy, aggregateOn, protocolVersion, start, end string
	var maxEntries int32

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a search request body to stdout",
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Doc(`
			$ ews render --kind item --page-size 25 --sort item:DateTimeReceived --sort-order Descending
			$ ews render --kind folder --traversal Deep --property folder:DisplayName
			$ ews render --kind calendar --start 2026-08-01T00:00:00Z --end 2026-09-01T00:00:00Z
		`),

		RunE: func(cmd *cobra.Command, args []string) error {
			logger := initLogger(cfg.LogLevel)

			if err := validate.Struct(params); err != nil {
				return err
			}
			if protocolVersion == "" {
				protocolVersion = cfg.ProtocolVersion
			}
			version := request.ParseVersion(protocolVersion)
			if !version.IsValid() {
				return fmt.Errorf("unknown protocol version %q", protocolVersion)
			}

			var propertySet *property.Set
			if len(properties) > 0 || cmd.Flags().Changed("base-shape") {
				propertySet = property.NewSet(property.BaseShape(params.BaseShape))
				for _, fieldURI := range properties {
					def, ok := property.ParseDefinition(fieldURI)
					if !ok {
						return fmt.Errorf("unknown property %q", fieldURI)
					}
					propertySet.Add(def)
				}
			}

			var grouping *search.Grouping
			if groupBy != "" {
				groupDef, ok := property.ParseDefinition(groupBy)
				if !ok {
					return fmt.Errorf("unknown property %q", groupBy)
				}
				if aggregateOn == "" {
					aggregateOn = groupBy
				}
				aggDef, ok := property.ParseDefinition(aggregateOn)
				if !ok {
					return fmt.Errorf("unknown property %q", aggregateOn)
				}
				grouping = search.NewGrouping(groupDef, search.SortDirection(params.SortOrder),
					aggDef, search.AggregateType(params.Aggregate))
			}

			var buf bytes.Buffer
			w := ewsxml.NewWriter(&buf)

			switch params.Kind {
			case "folder":
				view := search.NewFolderView(params.PageSize)
				view.SetOffset(params.Offset)
				view.SetBasePoint(search.OffsetBasePoint(params.BasePoint))
				view.SetPropertySet(propertySet)
				if sortBy != "" {
					def, ok := property.ParseDefinition(sortBy)
					if !ok {
						return fmt.Errorf("unknown property %q", sortBy)
					}
					view.OrderBy().Add(def, search.SortDirection(params.SortOrder))
				}

				op := operation.NewFindFolder(version, view)
				op.Traversal = search.FolderTraversal(params.Traversal)
				op.ParentFolderIDs = folders
				if err := op.WriteBodyToXml(w); err != nil {
					return err
				}
				logger.Debug("rendered find folder body", "request_id", op.RequestID())

			case "calendar":
				startDate, err := time.Parse(time.RFC3339, start)
				if err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
				endDate, err := time.Parse(time.RFC3339, end)
				if err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
				view := search.NewCalendarView(startDate, endDate)
				view.SetPropertySet(propertySet)
				if maxEntries > 0 {
					view.SetMaxEntriesReturned(maxEntries)
				}

				op := operation.NewFindItem(version, view)
				op.ParentFolderIDs = folders
				if err := op.WriteBodyToXml(w); err != nil {
					return err
				}
				logger.Debug("rendered calendar find item body", "request_id", op.RequestID())

			case "conversation":
				view := search.NewConversationIndexedItemView(params.PageSize)
				view.SetOffset(params.Offset)
				view.SetBasePoint(search.OffsetBasePoint(params.BasePoint))
				view.SetPropertySet(propertySet)

				op := operation.NewFindItem(version, view)
				op.GroupBy = grouping
				op.ParentFolderIDs = folders
				if err := op.WriteBodyToXml(w); err != nil {
					return err
				}
				logger.Debug("rendered conversation find item body", "request_id", op.RequestID())

			default:
				view := search.NewItemView(params.PageSize)
				view.SetOffset(params.Offset)
				view.SetBasePoint(search.OffsetBasePoint(params.BasePoint))
				view.SetPropertySet(propertySet)
				if sortBy != "" {
					def, ok := property.ParseDefinition(sortBy)
					if !ok {
						return fmt.Errorf("unknown property %q", sortBy)
					}
					view.OrderBy().Add(def, search.SortDirection(params.SortOrder))
				}

				op := operation.NewFindItem(version, view)
				op.Traversal = search.ItemTraversal(params.Traversal)
				op.GroupBy = grouping
				op.ParentFolderIDs = folders
				if err := op.WriteBodyToXml(w); err != nil {
					return err
				}
				logger.Debug("rendered find item body", "request_id", op.RequestID())
			}

			fmt.Println(buf.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&params.Kind, "kind", "k", "item", "--kind=item|folder|calendar|conversation")
	cmd.Flags().Int32VarP(&params.PageSize, "page-size", "s", 50, "--page-size=50 maximum results per page")
	cmd.Flags().Int32VarP(&params.Offset, "offset", "o", 0, "--offset=0 index of the first result")
	cmd.Flags().StringVar(&params.BasePoint, "base-point", "Beginning", "--base-point=Beginning|End")
	cmd.Flags().StringVarP(&params.Traversal, "traversal", "t", "Shallow", "--traversal=Shallow|Deep|SoftDeleted|Associated")
	cmd.Flags().StringVar(&params.BaseShape, "base-shape", "AllProperties", "--base-shape=IdOnly|Default|AllProperties")
	cmd.Flags().StringSliceVarP(&properties, "property", "p", nil, "--property=item:Subject additional field to request")
	cmd.Flags().StringSliceVarP(&folders, "folder", "f", []string{"inbox"}, "--folder=<id> parent folder to search in")
	cmd.Flags().StringVar(&sortBy, "sort", "", "--sort=item:DateTimeReceived field to sort on")
	cmd.Flags().StringVar(&params.SortOrder, "sort-order", "Ascending", "--sort-order=Ascending|Descending")
	cmd.Flags().StringVarP(&groupBy, "group-by", "g", "", "--group-by=item:Subject field to group on")
	cmd.Flags().StringVar(&aggregateOn, "aggregate-on", "", "--aggregate-on=item:DateTimeReceived group representative field")
	cmd.Flags().StringVar(&params.Aggregate, "aggregate", "Maximum", "--aggregate=Minimum|Maximum")
	cmd.Flags().StringVar(&protocolVersion, "protocol-version", "", "--protocol-version=Exchange2013_SP1")
	cmd.Flags().StringVar(&start, "start", "", "--start=2026-08-01T00:00:00Z calendar window start")
	cmd.Flags().StringVar(&end, "end", "", "--end=2026-09-01T00:00:00Z calendar window end")
	cmd.Flags().Int32Var(&maxEntries, "max-entries", 0, "--max-entries=100 cap calendar results, 0 means unbounded")
	return cmd
}

func initLogger(logLevel string) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
	return logger
}
