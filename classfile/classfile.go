package classfile

// Constant pool tags
const (
	TagUtf8               = 1
	TagInteger            = 3
	TagFloat              = 4
	TagLong               = 5
	TagDouble             = 6
	TagClass              = 7
	TagString             = 8
	TagFieldref           = 9
	TagMethodref          = 10
	TagInterfaceMethodref = 11
	TagNameAndType        = 12
	TagMethodHandle       = 15
	TagMethodType         = 16
	TagInvokeDynamic      = 18
)

// Access flags
const (
	AccPublic    = 0x0001
	AccPrivate   = 0x0002
	AccProtected = 0x0004
	AccStatic    = 0x0008
	AccFinal     = 0x0010
	AccSuper     = 0x0020
	AccNative    = 0x0100
	AccInterface = 0x0200
	AccAbstract  = 0x0400
)

// ClassFile represents a parsed .class file.
type ClassFile struct {
	ConstantPool []ConstantPoolEntry
	Interfaces   []uint16
	Fields       []FieldInfo
	Methods      []MethodInfo
	Attributes   []AttributeInfo
	MinorVersion uint16
	MajorVersion uint16
	AccessFlags  uint16
	ThisClass    uint16
	SuperClass   uint16
}

// ClassName returns the slash-separated name of this class.
func (cf *ClassFile) ClassName() string {
	name, _ := cf.classNameAt(cf.ThisClass)
	return name
}

// SuperClassName returns the superclass name, or "" for java/lang/Object
// itself.
func (cf *ClassFile) SuperClassName() string {
	if cf.SuperClass == 0 {
		return ""
	}
	name, _ := cf.classNameAt(cf.SuperClass)
	return name
}

func (cf *ClassFile) classNameAt(index uint16) (string, bool) {
	c, ok := cf.entryAt(index)
	if !ok {
		return "", false
	}
	cls, ok := c.(*ConstantClass)
	if !ok {
		return "", false
	}
	return cf.utf8At(cls.NameIndex)
}

func (cf *ClassFile) entryAt(index uint16) (ConstantPoolEntry, bool) {
	if index == 0 || int(index) >= len(cf.ConstantPool) {
		return nil, false
	}
	e := cf.ConstantPool[index]
	return e, e != nil
}

func (cf *ClassFile) utf8At(index uint16) (string, bool) {
	e, ok := cf.entryAt(index)
	if !ok {
		return "", false
	}
	u, ok := e.(*ConstantUtf8)
	if !ok {
		return "", false
	}
	return u.Value, true
}

// ConstantPoolEntry is an interface implemented by all constant pool types.
type ConstantPoolEntry interface {
	Tag() uint8
}

type ConstantUtf8 struct {
	Value string
}

func (c *ConstantUtf8) Tag() uint8 { return TagUtf8 }

type ConstantInteger struct {
	Value int32
}

func (c *ConstantInteger) Tag() uint8 { return TagInteger }

type ConstantFloat struct {
	Value float32
}

func (c *ConstantFloat) Tag() uint8 { return TagFloat }

type ConstantLong struct {
	Value int64
}

func (c *ConstantLong) Tag() uint8 { return TagLong }

type ConstantDouble struct {
	Value float64
}

func (c *ConstantDouble) Tag() uint8 { return TagDouble }

type ConstantClass struct {
	NameIndex uint16
}

func (c *ConstantClass) Tag() uint8 { return TagClass }

type ConstantString struct {
	StringIndex uint16
}

func (c *ConstantString) Tag() uint8 { return TagString }

type ConstantFieldref struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantFieldref) Tag() uint8 { return TagFieldref }

type ConstantMethodref struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantMethodref) Tag() uint8 { return TagMethodref }

type ConstantInterfaceMethodref struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantInterfaceMethodref) Tag() uint8 { return TagInterfaceMethodref }

type ConstantNameAndType struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

func (c *ConstantNameAndType) Tag() uint8 { return TagNameAndType }

type ConstantMethodHandle struct {
	ReferenceKind  uint8
	ReferenceIndex uint16
}

func (c *ConstantMethodHandle) Tag() uint8 { return TagMethodHandle }

type ConstantMethodType struct {
	DescriptorIndex uint16
}

func (c *ConstantMethodType) Tag() uint8 { return TagMethodType }

type ConstantInvokeDynamic struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (c *ConstantInvokeDynamic) Tag() uint8 { return TagInvokeDynamic }

// MethodInfo represents a method in a class file, with its name and
// descriptor resolved from the constant pool.
type MethodInfo struct {
	Name        string
	Descriptor  string
	Attributes  []AttributeInfo
	AccessFlags uint16
}

func (m MethodInfo) IsStatic() bool { return m.AccessFlags&AccStatic != 0 }
func (m MethodInfo) IsPublic() bool { return m.AccessFlags&AccPublic != 0 }

// IsConstructor reports whether the method is an instance initializer.
func (m MethodInfo) IsConstructor() bool { return m.Name == "<init>" }

// FieldInfo represents a field in a class file.
type FieldInfo struct {
	Name        string
	Descriptor  string
	Attributes  []AttributeInfo
	AccessFlags uint16
}

func (f FieldInfo) IsStatic() bool { return f.AccessFlags&AccStatic != 0 }

// AttributeInfo represents a raw attribute.
type AttributeInfo struct {
	Name string
	Data []byte
}
