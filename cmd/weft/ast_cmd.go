package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/weft-lang/weft/ast"
	"github.com/weft-lang/weft/desugar"
	"github.com/weft-lang/weft/parser"
	"github.com/weft-lang/weft/printer"
)

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().StringP("output", "o", "text", "Output format: text or json")
	astCmd.Flags().Bool("rewritten", false, "Show the tree after the control-flow rewrite")
}

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Display the AST for a Weft file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		rewritten, err := cmd.Flags().GetBool("rewritten")
		if err != nil {
			return err
		}
		return runAst(cmd.Context(), args[0], format, rewritten, os.Stdout)
	},
}

func runAst(ctx context.Context, path, format string, rewritten bool, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := parser.Parse(ctx, string(data), parser.WithFilename(path))
	if err != nil {
		return err
	}
	if rewritten {
		pass := desugar.New(
			desugar.WithFilename(path),
			desugar.WithSource(string(data)),
			desugar.WithLogger(newLogger()),
		)
		if doc, err = pass.Transform(doc); err != nil {
			return err
		}
	}

	switch format {
	case "json":
		output, err := marshalAST(doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\n", output)
		return nil
	case "text":
		fmt.Fprint(stdout, printer.Outline(doc))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// astNode represents a node in the JSON AST output.
type astNode struct {
	Type     string     `json:"type"`
	Value    any        `json:"value,omitempty"`
	Children []*astNode `json:"children,omitempty"`
}

func marshalAST(doc *ast.Document) ([]byte, error) {
	root := nodeToJSON(doc)
	if viper.GetBool("no-color") {
		return json.MarshalIndent(root, "", "  ")
	}
	return prettyjson.Marshal(root)
}

func nodeToJSON(node ast.Node) *astNode {
	if node == nil || reflect.ValueOf(node).IsNil() {
		return nil
	}
	result := &astNode{Type: reflect.TypeOf(node).Elem().Name()}
	addChild := func(child ast.Node) {
		if c := nodeToJSON(child); c != nil {
			result.Children = append(result.Children, c)
		}
	}

	switch n := node.(type) {
	case *ast.Document:
		for _, stmt := range n.Stmts {
			addChild(stmt)
		}
	case *ast.Element:
		result.Value = n.Tag.String()
		for _, attr := range n.Attrs {
			addChild(attr)
		}
		for _, child := range n.Children {
			addChild(child)
		}
	case *ast.Attr:
		result.Value = n.Name.Name
		addChild(n.Value)
	case *ast.Fragment:
		for _, child := range n.Children {
			addChild(child)
		}
	case *ast.Text:
		result.Value = n.Value
	case *ast.Embed:
		addChild(n.X)
	case *ast.Ident:
		result.Value = n.Name
	case *ast.Int:
		result.Value = n.Value
	case *ast.Float:
		result.Value = n.Value
	case *ast.Bool:
		result.Value = n.Value
	case *ast.String:
		result.Value = n.Value
	case *ast.Nil:
		// No value
	case *ast.Prefix:
		result.Value = n.Op
		addChild(n.X)
	case *ast.Infix:
		result.Value = n.Op
		addChild(n.X)
		addChild(n.Y)
	case *ast.Ternary:
		addChild(n.Cond)
		addChild(n.IfTrue)
		addChild(n.IfFalse)
	case *ast.Call:
		addChild(n.Fun)
		for _, arg := range n.Args {
			addChild(arg)
		}
	case *ast.GetAttr:
		result.Value = n.Attr.Name
		addChild(n.X)
	case *ast.Index:
		addChild(n.X)
		addChild(n.Index)
	case *ast.Arrow:
		for _, param := range n.Params {
			addChild(param)
		}
		addChild(n.Body)
	case *ast.List:
		for _, item := range n.Items {
			addChild(item)
		}
	case *ast.Map:
		for _, item := range n.Items {
			addChild(item.Key)
			addChild(item.Value)
		}
	case *ast.ListPattern:
		for _, element := range n.Elements {
			addChild(element)
		}
	case *ast.MapPattern:
		for _, entry := range n.Entries {
			addChild(entry.Key)
			addChild(entry.Value)
		}
	}
	return result
}
