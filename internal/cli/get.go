package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"

	api "github.com/jobforge/status-board/api/v1alpha1"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"

	jobTypeKind = "jobtypes"
	statusKind  = "status"
)

var (
	legalOutputTypes     = []string{jsonFormat, yamlFormat}
	legalKinds           = []string{jobTypeKind, statusKind}
	legalClassifications = []string{
		string(api.ClassificationError),
		string(api.ClassificationWarning),
		string(api.ClassificationSuccess),
		string(api.ClassificationInactive),
	}
)

type GetOptions struct {
	GlobalOptions

	Output         string
	Classification string
}

func DefaultGetOptions() *GetOptions {
	return &GetOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdGet() *cobra.Command {
	o := DefaultGetOptions()
	cmd := &cobra.Command{
		Use:   "get (TYPE | TYPE/ID)",
		Short: "Display one or many resources.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *GetOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.StringVarP(&o.Classification, "classification", "c", o.Classification, fmt.Sprintf("Only show status rows with this classification. One of: (%s).", strings.Join(legalClassifications, ", ")))
}

func (o *GetOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *GetOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if _, _, err := parseAndValidateKindId(args[0]); err != nil {
		return err
	}

	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	if len(o.Classification) > 0 && !funk.Contains(legalClassifications, o.Classification) {
		return fmt.Errorf("classification must be one of %s", strings.Join(legalClassifications, ", "))
	}

	return nil
}

func (o *GetOptions) Run(ctx context.Context, args []string) error {
	c := o.Client()

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	switch {
	case kind == jobTypeKind && id != nil:
		jobType, err := c.GetJobType(ctx, *id)
		if err != nil {
			return fmt.Errorf("reading %s/%s: %w", kind, id, err)
		}
		return o.print([]api.JobType{*jobType}, nil)
	case kind == jobTypeKind && id == nil:
		jobTypes, err := c.ListJobTypes(ctx)
		if err != nil {
			return fmt.Errorf("listing %s: %w", kind, err)
		}
		return o.print(jobTypes, nil)
	case kind == statusKind && id != nil:
		summary, err := c.GetJobTypeStatus(ctx, *id)
		if err != nil {
			return fmt.Errorf("reading %s/%s: %w", kind, id, err)
		}
		return o.print(nil, o.filterSummaries([]api.JobTypeSummary{*summary}))
	default:
		summaries, err := c.ListStatuses(ctx)
		if err != nil {
			return fmt.Errorf("listing %s: %w", kind, err)
		}
		return o.print(nil, o.filterSummaries(summaries))
	}
}

func (o *GetOptions) filterSummaries(summaries []api.JobTypeSummary) []api.JobTypeSummary {
	if o.Classification == "" {
		return summaries
	}
	return funk.Filter(summaries, func(s api.JobTypeSummary) bool {
		return string(s.Classification) == o.Classification
	}).([]api.JobTypeSummary)
}

func (o *GetOptions) print(jobTypes []api.JobType, summaries []api.JobTypeSummary) error {
	var resource interface{}
	if jobTypes != nil {
		resource = jobTypes
	} else {
		resource = summaries
	}

	switch o.Output {
	case jsonFormat:
		marshalled, err := json.Marshal(resource)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Printf("%s\n", string(marshalled))
		return nil
	case yamlFormat:
		marshalled, err := yaml.Marshal(resource)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Printf("%s\n", string(marshalled))
		return nil
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, '\t', 0)
		if jobTypes != nil {
			printJobTypesTable(w, jobTypes...)
		} else {
			printSummariesTable(w, summaries...)
		}
		return w.Flush()
	}
}

func printJobTypesTable(w *tabwriter.Writer, jobTypes ...api.JobType) {
	fmt.Fprintln(w, "ID\tNAME\tVERSION\tTITLE")
	for _, jt := range jobTypes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", jt.Id, jt.Name, jt.Version, jt.Title)
	}
}

func printSummariesTable(w *tabwriter.Writer, summaries ...api.JobTypeSummary) {
	fmt.Fprintln(w, "NAME\tCLASSIFICATION\tRATE\tFAILED\tCOMPLETED\tRUNNING")
	for _, s := range summaries {
		running := ""
		if s.ActivityCount != nil {
			running = fmt.Sprintf("%d", *s.ActivityCount)
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\t%s\n",
			s.JobType.Name, s.Classification, s.SuccessRate, s.ErrorLabel, s.TotalLabel, running)
	}
}

func parseAndValidateKindId(arg string) (string, *uuid.UUID, error) {
	kind, idStr, _ := strings.Cut(arg, "/")
	if !funk.Contains(legalKinds, kind) {
		return "", nil, fmt.Errorf("unsupported resource kind: %s", kind)
	}
	if idStr == "" {
		return kind, nil, nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return "", nil, fmt.Errorf("invalid resource id: %w", err)
	}
	return kind, &id, nil
}
