package meta

const exampleTOML = `
[library]
name = "CidlExample"

[[type]]
kind = "struct"
name = "S"
  [[type.field]]
  name = "A"
  type = "int32"
  [[type.field]]
  name = "B"
  type = "int"
  [[type.field]]
  name = "C"
  type = "IMy"

[[type]]
kind = "enum"
name = "Color"

[[type]]
kind = "interface"
name = "IMy"
guid = "6b29fc40-ca47-1067-b31d-00dd010662da"
  [[type.method]]
  name = "A"
  preserve_sig = true
  [[type.method]]
  name = "B"
  returns = "int32"
  preserve_sig = true
  params = [{ name = "x", type = "byte" }, { name = "p", type = "uint16*" }]
`
