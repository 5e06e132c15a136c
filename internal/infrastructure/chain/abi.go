package chain

// collectionABI covers the read-only surface of ArtProductCollection
const collectionABI = `[
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"config","stateMutability":"view","inputs":[],"outputs":[
		{"name":"ptype","type":"uint8"},
		{"name":"price","type":"uint256"},
		{"name":"maxSupply","type":"uint32"},
		{"name":"unrevealedUri","type":"string"},
		{"name":"creator","type":"address"},
		{"name":"registry","type":"address"}
	]},
	{"type":"function","name":"styles","stateMutability":"view","inputs":[{"name":"index","type":"uint256"}],"outputs":[
		{"name":"weightBp","type":"uint16"},
		{"name":"maxSupply","type":"uint32"},
		{"name":"minted","type":"uint32"},
		{"name":"baseUri","type":"string"}
	]}
]`
