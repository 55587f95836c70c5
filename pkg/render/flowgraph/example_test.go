package flowgraph_test

import (
	"fmt"

	"github.com/matzehuels/dynhelp/pkg/flow"
	"github.com/matzehuels/dynhelp/pkg/render/flowgraph"
)

func ExampleToDOT() {
	s, _ := flow.Build(true, flow.Definition{
		Flow: flow.Flow{ID: "tour", Enabled: true, Visible: true},
		Items: []flow.Item{
			flow.NewItem("hello", "header", flow.Content{}),
			flow.NewItem("bye", "footer", flow.Content{}),
		},
	})
	fmt.Print(flowgraph.ToDOT(s, flowgraph.Options{}))
	// Output:
	// digraph G {
	//   rankdir=LR;
	//   bgcolor="transparent";
	//   node [shape=box, style="rounded,filled", fillcolor=white, fontsize=14, margin="0.2,0.1"];
	//   compound=true;
	//
	//   subgraph cluster_0 {
	//     label="tour";
	//     "hello" [label="hello", fillcolor="#5fd7af", penwidth=2];
	//     "bye" [label="bye"];
	//     "hello" -> "bye";
	//   }
	// }
}
