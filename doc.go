package littlereflect

// littlereflect 提供针对动态对象模型的运行时自省能力
//
// 一个Reflector包装一个目标: 可调用实体(构造器模式)或者
// 非空的结构化值(实例模式), 并回答它的名字/构造器/原型链/
// 自身与继承成员等结构性问题; Go原生的map/slice/struct/func
// 会在构造时被装箱进对象模型
